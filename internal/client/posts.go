package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/postline-io/placeholder-client/internal/constants"
	"github.com/postline-io/placeholder-client/internal/http"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// PostsClient implements placeholder.PostsClient.
type PostsClient struct {
	httpClient *http.Client
}

// NewPostsClient creates a new posts client.
func NewPostsClient(httpClient *http.Client) *PostsClient {
	return &PostsClient{
		httpClient: httpClient,
	}
}

// Create implements placeholder.PostsClient.Create.
func (c *PostsClient) Create(ctx context.Context, request *placeholder.PostCreateRequest) (*placeholder.Post, error) {
	body := *request
	if body.UserID == 0 {
		body.UserID = constants.DefaultUserID
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathPosts, &body)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	var post placeholder.Post

	err = json.Unmarshal(resp.Body, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing post response: %w", err)
	}

	return &post, nil
}

// Get implements placeholder.PostsClient.Get. A 404 from the server is the
// recoverable not-found path and yields (nil, nil).
func (c *PostsClient) Get(ctx context.Context, postID int) (*placeholder.Post, error) {
	path, err := postPath(postID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		if placeholder.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting post: %w", err)
	}

	var post placeholder.Post

	err = json.Unmarshal(resp.Body, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing post: %w", err)
	}

	return &post, nil
}

// Update implements placeholder.PostsClient.Update. An empty update is
// rejected before any request is made.
func (c *PostsClient) Update(ctx context.Context, postID int, update *placeholder.PostUpdate) (*placeholder.Post, error) {
	if update.IsEmpty() {
		return nil, placeholder.ErrEmptyUpdate
	}

	path, err := postPath(postID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	var post placeholder.Post

	err = json.Unmarshal(resp.Body, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing post response: %w", err)
	}

	return &post, nil
}

// Delete implements placeholder.PostsClient.Delete.
func (c *PostsClient) Delete(ctx context.Context, postID int) (bool, error) {
	path, err := postPath(postID)
	if err != nil {
		return false, err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return false, fmt.Errorf("deleting post: %w", err)
	}

	return true, nil
}

// List implements placeholder.PostsClient.List. The server does the
// truncation; the client passes the limit through as a query parameter.
func (c *PostsClient) List(ctx context.Context, opts *placeholder.ListOptions) ([]placeholder.Post, error) {
	if opts == nil {
		opts = &placeholder.ListOptions{Limit: constants.DefaultListLimit}
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathPosts, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	var posts []placeholder.Post

	err = json.Unmarshal(resp.Body, &posts)
	if err != nil {
		return nil, fmt.Errorf("parsing posts list: %w", err)
	}

	return posts, nil
}

// postPath builds the path for a single post, rejecting ids the API could
// never have assigned.
func postPath(postID int) (string, error) {
	if postID <= 0 {
		return "", fmt.Errorf("%w: %d", placeholder.ErrInvalidPostID, postID)
	}

	return constants.APIPathPosts + "/" + strconv.Itoa(postID), nil
}
