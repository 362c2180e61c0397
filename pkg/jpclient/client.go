// Package jpclient provides the main entry point for creating JSONPlaceholder API clients
package jpclient

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/postline-io/placeholder-client/internal/client"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// New creates a new JSONPlaceholder API client from the given config.
func New(config *placeholder.Config) (placeholder.Client, error) {
	if config == nil {
		return nil, placeholder.ErrConfigRequired
	}

	// Normalize API endpoint before validation so schemeless hosts pass the
	// url check.
	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = placeholder.DefaultEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithEndpoint creates a new client with just an API endpoint.
func NewWithEndpoint(endpoint string) (placeholder.Client, error) {
	return New(&placeholder.Config{
		APIEndpoint: endpoint,
	})
}
