package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the timeout applied to every API request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Request defaults.
const (
	// DefaultUserAgent is the User-Agent header sent with every request.
	DefaultUserAgent = "PostClient/1.0"

	// DefaultUserID is the user id attached to created posts when the
	// caller does not supply one.
	DefaultUserID = 1

	// DefaultListLimit is the number of posts requested when no limit is
	// given.
	DefaultListLimit = 10
)

// API path constants.
const (
	// APIPathPosts is the posts collection endpoint.
	APIPathPosts = "/posts"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Mathematical and calculation constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
