// Package tui implements the interactive numbered menu over the client
// operations: menu, per-operation input form, and a result view with
// clipboard copy.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/postline-io/placeholder-client/pkg/placeholder"
)

type stage int

const (
	stageMenu stage = iota
	stageForm
	stageBusy
	stageResult
)

type opDoneMsg struct {
	output string
	err    error
}

type copyDoneMsg struct {
	err error
}

// Model is the single state machine behind the menu: menu -> form -> busy ->
// result, esc stepping back toward the menu.
type Model struct {
	ctx    context.Context
	client placeholder.Client
	ops    []operation

	stage  stage
	idx    int
	quit   bool
	status string

	inputs []textinput.Model
	focus  int

	result    string
	resultErr error
}

// NewModel builds the initial menu model.
func NewModel(ctx context.Context, client placeholder.Client) *Model {
	return &Model{
		ctx:    ctx,
		client: client,
		ops:    operations(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		m.stage = stageResult
		m.result = msg.output
		m.resultErr = msg.err

		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied to clipboard"
		}

		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true

			return m, tea.Quit
		}

		switch m.stage {
		case stageMenu:
			return m.updateMenu(msg)
		case stageForm:
			return m.updateForm(msg)
		case stageBusy:
			return m, nil
		case stageResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.ops) {
			m.idx++
		}
	case "1", "2", "3", "4", "5", "6", "7":
		n, _ := strconv.Atoi(key)

		m.idx = n - 1
		if m.idx == len(m.ops) {
			m.quit = true

			return m, tea.Quit
		}

		return m.openForm()
	case "q", "esc":
		m.quit = true

		return m, tea.Quit
	case "enter":
		if m.idx == len(m.ops) {
			m.quit = true

			return m, tea.Quit
		}

		return m.openForm()
	}

	return m, nil
}

func (m *Model) openForm() (tea.Model, tea.Cmd) {
	op := m.ops[m.idx]

	m.inputs = make([]textinput.Model, len(op.fields))
	for i, f := range op.fields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.Prompt = "> "
		input.CharLimit = 256
		m.inputs[i] = input
	}

	m.focus = 0
	m.inputs[0].Focus()
	m.stage = stageForm
	m.status = ""

	return m, textinput.Blink
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stage = stageMenu

		return m, nil
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m.moveFocus(1)
		}

		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

func (m *Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()

	m.focus += delta
	if m.focus < 0 {
		m.focus = len(m.inputs) - 1
	} else if m.focus >= len(m.inputs) {
		m.focus = 0
	}

	return m, m.inputs[m.focus].Focus()
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	op := m.ops[m.idx]

	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = m.inputs[i].Value()
	}

	m.stage = stageBusy

	return m, func() tea.Msg {
		result, err := op.run(m.ctx, m.client, values)
		if err != nil {
			return opDoneMsg{err: err}
		}

		return opDoneMsg{output: renderResult(result)}
	}
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.stage = stageMenu
		m.status = ""

		return m, nil
	case "c":
		if m.resultErr != nil {
			return m, nil
		}

		output := m.result

		return m, func() tea.Msg {
			return copyDoneMsg{err: clipboard.WriteAll(output)}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.stage {
	case stageMenu:
		return m.viewMenu()
	case stageForm:
		return m.viewForm()
	case stageBusy:
		return appStyle.Render(titleStyle.Render(m.ops[m.idx].name) + "\n\nworking...")
	case stageResult:
		return m.viewResult()
	}

	return ""
}

func (m *Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("POST CLIENT"))
	b.WriteString("\n\n")

	for i, op := range m.ops {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, op.name))
	}

	cursor := " "
	if m.idx == len(m.ops) {
		cursor = ">"
	}

	b.WriteString(fmt.Sprintf("%s %d. Exit\n", cursor, len(m.ops)+1))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select │ 1-7: jump │ q: quit"))

	return appStyle.Render(b.String())
}

func (m *Model) viewForm() string {
	op := m.ops[m.idx]

	var b strings.Builder

	b.WriteString(titleStyle.Render(op.name))
	b.WriteString("\n\n")

	for i, f := range op.fields {
		b.WriteString(f.label)
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next/run │ tab: move │ esc: back"))

	return appStyle.Render(b.String())
}

func (m *Model) viewResult() string {
	op := m.ops[m.idx]

	var b strings.Builder

	b.WriteString(titleStyle.Render(op.name))
	b.WriteString("\n\n")

	if m.resultErr != nil {
		b.WriteString(errorStyle.Render("error: " + m.resultErr.Error()))
	} else {
		b.WriteString(m.result)
	}

	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c: copy │ esc: back to menu"))

	return appStyle.Render(b.String())
}

// Run starts the interactive menu and blocks until the user exits.
func Run(ctx context.Context, client placeholder.Client) error {
	model := NewModel(ctx, client)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	return nil
}
