package placeholder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_WireNames(t *testing.T) {
	// The API speaks camelCase; a drift here breaks every operation.
	data := `{"id": 1, "title": "t", "body": "b", "userId": 7}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(data), &post))
	assert.Equal(t, 1, post.ID)
	assert.Equal(t, 7, post.UserID)

	encoded, err := json.Marshal(PostCreateRequest{Title: "t", Body: "b", UserID: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "t", "body": "b", "userId": 7}`, string(encoded))
}

func TestComment_WireNames(t *testing.T) {
	data := `{"id": 5, "postId": 1, "name": "n", "email": "e@example.com", "body": "b"}`

	var comment Comment
	require.NoError(t, json.Unmarshal([]byte(data), &comment))
	assert.Equal(t, 5, comment.ID)
	assert.Equal(t, 1, comment.PostID)
	assert.Equal(t, "e@example.com", comment.Email)
}

func TestPostUpdate_IsEmpty(t *testing.T) {
	title := "new title"

	tests := []struct {
		name     string
		update   *PostUpdate
		expected bool
	}{
		{
			name:     "nil update",
			update:   nil,
			expected: true,
		},
		{
			name:     "no fields",
			update:   &PostUpdate{},
			expected: true,
		},
		{
			name:     "title only",
			update:   &PostUpdate{Title: &title},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.update.IsEmpty())
		})
	}
}

func TestPostUpdate_OmitsUnsetFields(t *testing.T) {
	title := "only the title"

	encoded, err := json.Marshal(&PostUpdate{Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "only the title"}`, string(encoded))
}

func TestListOptions_ToValues(t *testing.T) {
	tests := []struct {
		name     string
		opts     *ListOptions
		expected string
	}{
		{
			name:     "nil options",
			opts:     nil,
			expected: "",
		},
		{
			name:     "zero limit",
			opts:     &ListOptions{},
			expected: "",
		},
		{
			name:     "limit set",
			opts:     &ListOptions{Limit: 5},
			expected: "_limit=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.ToValues().Encode())
		})
	}
}
