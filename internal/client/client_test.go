package client

import (
	"testing"

	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := New(&placeholder.Config{APIEndpoint: "https://jsonplaceholder.typicode.com"})
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.Posts())
	assert.NotNil(t, client.Comments())
}

func TestNew_MissingEndpoint(t *testing.T) {
	t.Parallel()

	client, err := New(&placeholder.Config{})
	require.ErrorIs(t, err, placeholder.ErrAPIEndpointRequired)
	assert.Nil(t, client)
}

func TestLoggerAdapter(t *testing.T) {
	t.Parallel()

	recorder := &recordingLogger{}
	adapter := &loggerAdapter{logger: recorder}

	adapter.Debug("d", map[string]interface{}{"k": 1})
	adapter.Info("i", nil)
	adapter.Warn("w", nil)
	adapter.Error("e", nil)

	assert.Equal(t, []string{"debug:d", "info:i", "warn:w", "error:e"}, recorder.entries)
}

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "debug:"+msg)
}

func (l *recordingLogger) Info(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "info:"+msg)
}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "warn:"+msg)
}

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "error:"+msg)
}
