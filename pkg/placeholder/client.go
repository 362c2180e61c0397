package placeholder

import (
	"context"
	"time"
)

// PostsClient provides the operations on the posts resource.
type PostsClient interface {
	// Create creates a post and returns the server's decoded response,
	// including the assigned id.
	Create(ctx context.Context, request *PostCreateRequest) (*Post, error)
	// Get fetches a post by id. A missing post yields (nil, nil); this is
	// the sole recoverable not-found path.
	Get(ctx context.Context, postID int) (*Post, error)
	// Update applies a partial update and returns the updated post. An
	// empty update fails before any request is made.
	Update(ctx context.Context, postID int, update *PostUpdate) (*Post, error)
	// Delete removes a post. True means the server answered 2xx.
	Delete(ctx context.Context, postID int) (bool, error)
	// List returns posts, capped server-side by the limit option.
	List(ctx context.Context, opts *ListOptions) ([]Post, error)
}

// CommentsClient provides read access to post comments.
type CommentsClient interface {
	// ListForPost returns the comments attached to a post.
	ListForPost(ctx context.Context, postID int) ([]Comment, error)
}

// Client is the top-level interface for talking to the API.
type Client interface {
	Posts() PostsClient
	Comments() CommentsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a placeholder.Client.
//
// # Endpoint
//
// APIEndpoint defaults to the public JSONPlaceholder host when empty.
// jpclient.New normalizes the value by trimming a trailing slash and adding
// "https://" if no scheme is present. The endpoint is the only network peer
// the client ever contacts.
//
// # Timeouts and retries
//
// Every operation issues exactly one request with no retries and no backoff.
// HTTPTimeout bounds the whole round trip and defaults to 30 seconds;
// per-call deadlines can additionally be set through the context passed to
// client methods.
type Config struct {
	// APIEndpoint: base URL for the API. Empty selects the public host.
	APIEndpoint string `validate:"omitempty,url"`

	// HTTPTimeout: request timeout applied to every operation. Zero selects
	// the 30 second default.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

// DefaultEndpoint is the public JSONPlaceholder host used when no endpoint
// is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com"
