// Package client implements the placeholder.Client interface over the
// internal HTTP transport.
package client

import (
	"github.com/postline-io/placeholder-client/internal/http"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// Client implements the placeholder.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     placeholder.Logger

	// Resource clients
	posts    placeholder.PostsClient
	comments placeholder.CommentsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *placeholder.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new API client.
func New(config *placeholder.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, placeholder.ErrAPIEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Posts implements placeholder.Client.Posts.
func (c *Client) Posts() placeholder.PostsClient {
	return c.posts
}

// Comments implements placeholder.Client.Comments.
func (c *Client) Comments() placeholder.CommentsClient {
	return c.comments
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.posts = NewPostsClient(c.httpClient)
	c.comments = NewCommentsClient(c.httpClient)
}

// loggerAdapter adapts placeholder.Logger to http.Logger.
type loggerAdapter struct {
	logger placeholder.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
