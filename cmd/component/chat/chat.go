// Package chat is the interactive frontend: a textinput for the
// question, a viewport with the answered history, and a spinner while a
// query is in flight. Poll cycles are scheduled with tea.Tick at the
// session's interval; tearing the program down cancels the context and
// with it any pending cycle.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/getdeskhelp/deskhelp-cli/cmd/component/fetch"
	"github.com/getdeskhelp/deskhelp-cli/render"
	"github.com/getdeskhelp/deskhelp-cli/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Padding(0, 1)
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "21", Dark: "33"})
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	ctx     context.Context
	session *session.Session

	input    textinput.Model
	fetch    fetch.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool
	copied bool
}

func NewModel(ctx context.Context, s *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask the help desk anything"
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctx:     ctx,
		session: s,
		input:   ti,
		fetch:   fetch.New("Waiting for the help desk..."),
	}
}

type (
	submitResultMsg struct{ err error }
	pollResultMsg   struct {
		done bool
		err  error
	}
	pollTickMsg    struct{}
	clearCopiedMsg struct{}
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) submitCmd(question string) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{err: m.session.Submit(m.ctx, question)}
	}
}

func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		done, err := m.session.PollOnce(m.ctx)
		return pollResultMsg{done: done, err: err}
	}
}

func (m Model) pollTickCmd() tea.Cmd {
	return tea.Tick(m.session.PollInterval(), func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m Model) busy() bool {
	st := m.session.State()
	return st == session.StateSubmitting || st == session.StateInProgress
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			question := m.input.Value()
			if strings.TrimSpace(question) == "" || m.busy() {
				// the session guard makes this a no-op anyway
				return m, nil
			}
			// the input is cleared right away so the user can type the
			// next question while this one is in flight
			m.input.Reset()
			m.fetch = fetch.New("Waiting for: " + strings.TrimSpace(question))
			return m, tea.Batch(m.submitCmd(question), m.fetch.Init())
		case "ctrl+y":
			entries := m.session.History().Entries()
			if len(entries) == 0 {
				return m, nil
			}
			if err := clipboard.WriteAll(entries[0].Answer); err != nil {
				return m, nil
			}
			m.copied = true
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
				return clearCopiedMsg{}
			})
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		chromeHeight := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.refreshTranscript()

	case submitResultMsg:
		if msg.err != nil {
			if errors.Is(msg.err, session.ErrEmptyQuestion) || errors.Is(msg.err, session.ErrPending) {
				return m, nil
			}
			// terminal for this attempt; the session already carries the
			// user-facing message
			m.fetch, _ = m.fetch.Update(m.fetch.Done())
			return m, nil
		}
		// first poll right away, the rest on the fixed interval
		return m, m.pollCmd()

	case pollTickMsg:
		return m, m.pollCmd()

	case pollResultMsg:
		if !msg.done {
			return m, m.pollTickCmd()
		}
		m.fetch, _ = m.fetch.Update(m.fetch.Done())
		m.refreshTranscript()
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.fetch, cmd = m.fetch.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// refreshTranscript rebuilds the viewport from the history, newest
// first. Rendering happens here, not in View, so each answer is
// rendered once per change instead of once per frame.
func (m *Model) refreshTranscript() {
	entries := m.session.History().Entries()
	if len(entries) == 0 {
		m.viewport.SetContent(noticeStyle.Render("No answers yet. Ask away!"))
		return
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(questionStyle.Render("You asked: " + e.Question))
		b.WriteString("\n")
		out, err := render.Markdown(e.Answer)
		if err != nil {
			out = e.Answer + "\n"
		}
		b.WriteString(out)
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m Model) headerView() string {
	return titleStyle.Render("deskhelp") + "\n"
}

func (m Model) footerView() string {
	var lines []string

	if m.busy() {
		lines = append(lines, m.fetch.View())
	} else if msg := m.session.ErrorMessage(); msg != "" {
		lines = append(lines, errorStyle.Render(msg))
	} else if m.copied {
		lines = append(lines, noticeStyle.Render("answer copied to clipboard"))
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, m.input.View())
	lines = append(lines, helpStyle.Render("enter ask • ctrl+y copy last answer • ctrl+c quit"))
	return "\n" + strings.Join(lines, "\n")
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	return m.headerView() + m.viewport.View() + m.footerView()
}
