package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/postline-io/placeholder-client/internal/http"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// CommentsClient implements placeholder.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{
		httpClient: httpClient,
	}
}

// ListForPost implements placeholder.CommentsClient.ListForPost.
func (c *CommentsClient) ListForPost(ctx context.Context, postID int) ([]placeholder.Comment, error) {
	path, err := postPath(postID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+"/comments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var comments []placeholder.Comment

	err = json.Unmarshal(resp.Body, &comments)
	if err != nil {
		return nil, fmt.Errorf("parsing comments list: %w", err)
	}

	return comments, nil
}
