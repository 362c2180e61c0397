package constants

import "errors"

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json, or yaml")
	ErrNoUpdateFlags       = errors.New("at least one of --title or --body is required")
	ErrPostIDRequired      = errors.New("post id argument is required")
)

// Operation errors.
var (
	ErrDeleteAborted = errors.New("delete aborted")
	ErrNotATerminal  = errors.New("interactive menu requires a terminal")
)
