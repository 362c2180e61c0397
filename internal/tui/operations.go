package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/postline-io/placeholder-client/internal/constants"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

// field describes one input of an operation form.
type field struct {
	label       string
	placeholder string
}

// operation is one menu entry: a name, the inputs it needs, and the client
// call it maps to.
type operation struct {
	name   string
	fields []field
	run    func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error)
}

// operations mirrors the numbered menu of the CLI: the six client
// operations. Exit is appended by the menu itself.
func operations() []operation {
	return []operation{
		{
			name: "Create post",
			fields: []field{
				{label: "Title", placeholder: "my new post"},
				{label: "Body", placeholder: "post body"},
				{label: "User id", placeholder: "1"},
			},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				userID := constants.DefaultUserID

				if strings.TrimSpace(values[2]) != "" {
					parsed, err := strconv.Atoi(strings.TrimSpace(values[2]))
					if err != nil {
						return nil, fmt.Errorf("parsing user id: %w", err)
					}

					userID = parsed
				}

				return client.Posts().Create(ctx, &placeholder.PostCreateRequest{
					Title:  values[0],
					Body:   values[1],
					UserID: userID,
				})
			},
		},
		{
			name:   "Get post",
			fields: []field{{label: "Post id", placeholder: "1"}},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				postID, err := parseID(values[0])
				if err != nil {
					return nil, err
				}

				post, err := client.Posts().Get(ctx, postID)
				if err != nil {
					return nil, err
				}

				if post == nil {
					return fmt.Sprintf("post %d not found", postID), nil
				}

				return post, nil
			},
		},
		{
			name: "Update post",
			fields: []field{
				{label: "Post id", placeholder: "1"},
				{label: "New title (blank to keep)", placeholder: ""},
				{label: "New body (blank to keep)", placeholder: ""},
			},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				postID, err := parseID(values[0])
				if err != nil {
					return nil, err
				}

				update := &placeholder.PostUpdate{}
				if values[1] != "" {
					update.Title = &values[1]
				}

				if values[2] != "" {
					update.Body = &values[2]
				}

				return client.Posts().Update(ctx, postID, update)
			},
		},
		{
			name:   "Delete post",
			fields: []field{{label: "Post id", placeholder: "1"}},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				postID, err := parseID(values[0])
				if err != nil {
					return nil, err
				}

				_, err = client.Posts().Delete(ctx, postID)
				if err != nil {
					return nil, err
				}

				return fmt.Sprintf("post %d deleted", postID), nil
			},
		},
		{
			name:   "List posts",
			fields: []field{{label: "Limit", placeholder: strconv.Itoa(constants.DefaultListLimit)}},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				limit := constants.DefaultListLimit

				if strings.TrimSpace(values[0]) != "" {
					parsed, err := strconv.Atoi(strings.TrimSpace(values[0]))
					if err != nil {
						return nil, fmt.Errorf("parsing limit: %w", err)
					}

					limit = parsed
				}

				return client.Posts().List(ctx, &placeholder.ListOptions{Limit: limit})
			},
		},
		{
			name:   "Post comments",
			fields: []field{{label: "Post id", placeholder: "1"}},
			run: func(ctx context.Context, client placeholder.Client, values []string) (interface{}, error) {
				postID, err := parseID(values[0])
				if err != nil {
					return nil, err
				}

				return client.Comments().ListForPost(ctx, postID)
			},
		},
	}
}

func parseID(raw string) (int, error) {
	postID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing post id: %w", err)
	}

	return postID, nil
}

// renderResult turns an operation result into display text. Structured
// results render as indented JSON, plain strings pass through.
func renderResult(result interface{}) string {
	if text, ok := result.(string); ok {
		return text
	}

	data, err := json.MarshalIndent(result, "", strings.Repeat(" ", constants.JSONIndentSize))
	if err != nil {
		return fmt.Sprintf("%v", result)
	}

	return string(data)
}
