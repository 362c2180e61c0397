package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/postline-io/placeholder-client/internal/http"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsClient_ListForPost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/1/comments", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		comments := []placeholder.Comment{
			{ID: 1, PostID: 1, Name: "first", Email: "a@example.com", Body: "nice"},
			{ID: 2, PostID: 1, Name: "second", Email: "b@example.com", Body: "agreed"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(comments)
	}))
	defer server.Close()

	comments := NewCommentsClient(internalhttp.NewClient(server.URL))

	list, err := comments.ListForPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 1, list[0].PostID)
	assert.Equal(t, "a@example.com", list[0].Email)
	assert.Equal(t, "agreed", list[1].Body)
}

func TestCommentsClient_ListForPost_Empty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	comments := NewCommentsClient(internalhttp.NewClient(server.URL))

	list, err := comments.ListForPost(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCommentsClient_ListForPost_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	comments := NewCommentsClient(internalhttp.NewClient(server.URL))

	list, err := comments.ListForPost(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, list)

	respErr := &placeholder.ResponseError{}
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
}

func TestCommentsClient_ListForPost_InvalidID(t *testing.T) {
	t.Parallel()

	comments := NewCommentsClient(internalhttp.NewClient("http://127.0.0.1:0"))

	list, err := comments.ListForPost(context.Background(), 0)
	require.ErrorIs(t, err, placeholder.ErrInvalidPostID)
	assert.Nil(t, list)
}
