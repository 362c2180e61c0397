//go:build integration
// +build integration

package integration

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/postline-io/placeholder-client/internal/fakeapi"
	"github.com/postline-io/placeholder-client/pkg/jpclient"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/stretchr/testify/require"
)

// TestEnv bundles a fake API server with a client pointed at it.
type TestEnv struct {
	Fake   *fakeapi.Server
	Server *httptest.Server
	Client placeholder.Client
}

// NewTestEnv starts a fake API server and builds a client against it. Both
// are torn down when the test finishes.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	fake := fakeapi.New()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	client, err := jpclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	return &TestEnv{
		Fake:   fake,
		Server: server,
		Client: client,
	}
}

// NewTestEnvWithTimeout builds the environment with a client whose request
// timeout is shortened, for timeout workflows.
func NewTestEnvWithTimeout(t *testing.T, timeout time.Duration) *TestEnv {
	t.Helper()

	env := NewTestEnv(t)

	client, err := jpclient.New(&placeholder.Config{
		APIEndpoint: env.Server.URL,
		HTTPTimeout: timeout,
	})
	require.NoError(t, err)

	env.Client = client

	return env
}
