package placeholder

import (
	"net/url"
	"strconv"
)

// Post represents a post resource. Identity is assigned by the server on
// create; clients never generate ids.
type Post struct {
	ID     int    `json:"id"     yaml:"id"`
	Title  string `json:"title"  yaml:"title"`
	Body   string `json:"body"   yaml:"body"`
	UserID int    `json:"userId" yaml:"userId"`
}

// Comment represents a comment attached to a post. Comments are read-only
// from the client's perspective.
type Comment struct {
	ID     int    `json:"id"     yaml:"id"`
	PostID int    `json:"postId" yaml:"postId"`
	Name   string `json:"name"   yaml:"name"`
	Email  string `json:"email"  yaml:"email"`
	Body   string `json:"body"   yaml:"body"`
}

// PostCreateRequest is the payload for creating a post. A zero UserID is
// replaced with the default user id before the request is sent.
type PostCreateRequest struct {
	Title  string `json:"title"  yaml:"title"`
	Body   string `json:"body"   yaml:"body"`
	UserID int    `json:"userId" yaml:"userId"`
}

// PostUpdate is a partial update. Only non-nil fields are sent on the wire;
// an update with no fields set is rejected before any request is made.
type PostUpdate struct {
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  *string `json:"body,omitempty"  yaml:"body,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u *PostUpdate) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Body == nil)
}

// ListOptions holds query options for listing posts.
type ListOptions struct {
	// Limit caps the number of posts returned by the server. Zero means
	// the default limit; the server does the truncation.
	Limit int
}

// ToValues converts the options to URL query values. The wire name for the
// limit is "_limit", which is what the API implements.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o != nil && o.Limit > 0 {
		values.Set("_limit", strconv.Itoa(o.Limit))
	}

	return values
}
