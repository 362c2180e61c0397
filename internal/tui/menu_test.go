package tui

import (
	"context"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/postline-io/placeholder-client/internal/fakeapi"
	"github.com/postline-io/placeholder-client/pkg/jpclient"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) placeholder.Client {
	t.Helper()

	server := httptest.NewServer(fakeapi.New().Handler())
	t.Cleanup(server.Close)

	client, err := jpclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	return client
}

func keyMsg(key string) tea.KeyMsg {
	if len(key) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestModel_MenuNavigation(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	assert.Equal(t, 0, model.idx)

	model.Update(keyMsg("down"))
	model.Update(keyMsg("down"))
	assert.Equal(t, 2, model.idx)

	model.Update(keyMsg("up"))
	assert.Equal(t, 1, model.idx)

	// The cursor stops at the Exit entry.
	for i := 0; i < 20; i++ {
		model.Update(keyMsg("down"))
	}

	assert.Equal(t, len(model.ops), model.idx)
}

func TestModel_MenuShowsAllOperations(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	view := model.View()
	assert.Contains(t, view, "1. Create post")
	assert.Contains(t, view, "2. Get post")
	assert.Contains(t, view, "3. Update post")
	assert.Contains(t, view, "4. Delete post")
	assert.Contains(t, view, "5. List posts")
	assert.Contains(t, view, "6. Post comments")
	assert.Contains(t, view, "7. Exit")
}

func TestModel_NumberKeyOpensForm(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	model.Update(keyMsg("2"))
	assert.Equal(t, stageForm, model.stage)
	assert.Len(t, model.inputs, 1)
	assert.Contains(t, model.View(), "Post id")
}

func TestModel_ExitEntryQuits(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	_, cmd := model.Update(keyMsg("7"))
	require.NotNil(t, cmd)
	assert.True(t, model.quit)
}

func TestModel_EscLeavesForm(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	model.Update(keyMsg("1"))
	require.Equal(t, stageForm, model.stage)

	model.Update(keyMsg("esc"))
	assert.Equal(t, stageMenu, model.stage)
}

func TestModel_SubmitRunsOperation(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	// Get post, id 1.
	model.Update(keyMsg("2"))
	model.inputs[0].SetValue("1")

	_, cmd := model.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, stageBusy, model.stage)

	msg := cmd()
	done, ok := msg.(opDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Contains(t, done.output, "seed post 1")

	model.Update(done)
	assert.Equal(t, stageResult, model.stage)
	assert.Contains(t, model.View(), "seed post 1")
}

func TestModel_SubmitReportsError(t *testing.T) {
	t.Parallel()

	model := NewModel(context.Background(), newTestClient(t))

	// Get post with a non-numeric id.
	model.Update(keyMsg("2"))
	model.inputs[0].SetValue("not-a-number")

	_, cmd := model.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(opDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	model.Update(done)
	assert.Contains(t, model.View(), "error:")
}

func TestOperations_GetAbsentPost(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	ops := operations()

	result, err := ops[1].run(context.Background(), client, []string{"9999"})
	require.NoError(t, err)
	assert.Equal(t, "post 9999 not found", result)
}

func TestOperations_CreateDefaultsUserID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	ops := operations()

	result, err := ops[0].run(context.Background(), client, []string{"a title", "a body", ""})
	require.NoError(t, err)

	post, ok := result.(*placeholder.Post)
	require.True(t, ok)
	assert.Equal(t, 1, post.UserID)
	assert.Equal(t, 101, post.ID)
}

func TestOperations_ListHonorsLimit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	ops := operations()

	result, err := ops[4].run(context.Background(), client, []string{"3"})
	require.NoError(t, err)

	posts, ok := result.([]placeholder.Post)
	require.True(t, ok)
	assert.Len(t, posts, 3)
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain text", renderResult("plain text"))

	rendered := renderResult(&placeholder.Post{ID: 1, Title: "x"})
	assert.Contains(t, rendered, `"id": 1`)
	assert.Contains(t, rendered, `"title": "x"`)
}
