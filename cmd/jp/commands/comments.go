package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommentsCommand creates the comments command.
func NewCommentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments POST_ID",
		Short: "List a post's comments",
		Long:  "List the comments attached to a post",
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

			comments, err := client.Comments().ListForPost(context.Background(), postID)
			if err != nil {
				return fmt.Errorf("failed to list comments: %w", err)
			}

			return outputComments(comments)
		},
	}
}
