package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/postline-io/placeholder-client/internal/constants"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/spf13/cobra"
)

// CreateOptions holds the options for creating a post.
type CreateOptions struct {
	Title  string
	Body   string
	UserID int
}

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	var opts CreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Long:  "Create a new post with a title and body; the server assigns the id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateCommand(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "post title (required)")
	cmd.Flags().StringVar(&opts.Body, "body", "", "post body (required)")
	cmd.Flags().IntVar(&opts.UserID, "user-id", constants.DefaultUserID, "user id attached to the post")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func runCreateCommand(opts CreateOptions) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	post, err := client.Posts().Create(context.Background(), &placeholder.PostCreateRequest{
		Title:  opts.Title,
		Body:   opts.Body,
		UserID: opts.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return outputPost(post)
}

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POST_ID",
		Short: "Get a post",
		Long:  "Fetch a single post by id; a missing post is reported, not an error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parsePostID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			post, err := client.Posts().Get(context.Background(), postID)
			if err != nil {
				return fmt.Errorf("failed to get post: %w", err)
			}

			if post == nil {
				cmd.Printf("Post %d not found\n", postID)

				return nil
			}

			return outputPost(post)
		},
	}
}

// UpdateOptions holds the options for updating a post.
type UpdateOptions struct {
	Title string
	Body  string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var opts UpdateOptions

	cmd := &cobra.Command{
		Use:   "update POST_ID",
		Short: "Update a post",
		Long:  "Apply a partial update to a post; only the given fields are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateCommand(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().StringVar(&opts.Body, "body", "", "new body")

	return cmd
}

func runUpdateCommand(cmd *cobra.Command, args []string, opts UpdateOptions) error {
	postID, err := parsePostID(args)
	if err != nil {
		return err
	}

	update := &placeholder.PostUpdate{}
	if cmd.Flags().Changed("title") {
		update.Title = &opts.Title
	}

	if cmd.Flags().Changed("body") {
		update.Body = &opts.Body
	}

	// Fail before any network call when there is nothing to send.
	if update.IsEmpty() {
		return constants.ErrNoUpdateFlags
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	post, err := client.Posts().Update(context.Background(), postID, update)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return outputPost(post)
}

// DeleteOptions holds the options for deleting a post.
type DeleteOptions struct {
	Force bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var opts DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete POST_ID",
		Short: "Delete a post",
		Long:  "Delete a post by id, prompting for confirmation unless --force is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteCommand(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "delete without confirmation")

	return cmd
}

func runDeleteCommand(cmd *cobra.Command, args []string, opts DeleteOptions) error {
	postID, err := parsePostID(args)
	if err != nil {
		return err
	}

	if !opts.Force {
		cmd.Printf("Really delete post %d? (y/N): ", postID)

		reader := bufio.NewReader(cmd.InOrStdin())

		answer, _ := reader.ReadString('\n')
		if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
			return constants.ErrDeleteAborted
		}
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	_, err = client.Posts().Delete(context.Background(), postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	cmd.Printf("Post %d deleted\n", postID)

	return nil
}

// ListOptions holds the options for listing posts.
type ListOptions struct {
	Limit int
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Long:  "List posts, truncated server-side to the given limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCommand(opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", constants.DefaultListLimit, "maximum number of posts to return")

	return cmd
}

func runListCommand(opts ListOptions) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	posts, err := client.Posts().List(context.Background(), &placeholder.ListOptions{Limit: opts.Limit})
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	return outputPosts(posts)
}
