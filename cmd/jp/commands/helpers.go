// Package commands implements the jp CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/postline-io/placeholder-client/internal/constants"
	"github.com/postline-io/placeholder-client/internal/logger"
	"github.com/postline-io/placeholder-client/pkg/jpclient"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// createClient builds a client from the viper-bound CLI configuration.
func createClient() (placeholder.Client, error) {
	verbose := viper.GetBool("verbose")

	config := &placeholder.Config{
		APIEndpoint: viper.GetString("api"),
		HTTPTimeout: viper.GetDuration("timeout"),
		Debug:       verbose,
		Logger:      logger.New(verbose),
	}

	client, err := jpclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// parsePostID parses the positional post id argument.
func parsePostID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, constants.ErrPostIDRequired
	}

	postID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", placeholder.ErrInvalidPostID, args[0])
	}

	return postID, nil
}

// outputPost renders a single post in the configured output format.
func outputPost(post *placeholder.Post) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return outputJSON(post)
	case constants.FormatYAML:
		return outputYAML(post)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.Itoa(post.ID))
		_ = table.Append("Title", post.Title)
		_ = table.Append("Body", post.Body)
		_ = table.Append("User ID", strconv.Itoa(post.UserID))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// outputPosts renders a list of posts in the configured output format.
func outputPosts(posts []placeholder.Post) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return outputJSON(posts)
	case constants.FormatYAML:
		return outputYAML(posts)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Title", "User ID")

		for _, post := range posts {
			_ = table.Append(strconv.Itoa(post.ID), post.Title, strconv.Itoa(post.UserID))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// outputComments renders a list of comments in the configured output format.
func outputComments(comments []placeholder.Comment) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return outputJSON(comments)
	case constants.FormatYAML:
		return outputYAML(comments)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Email")

		for _, comment := range comments {
			_ = table.Append(strconv.Itoa(comment.ID), comment.Name, comment.Email)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}
