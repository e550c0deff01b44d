package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"cellflex"
)

type role string

const (
	roleUser      role = "you"
	roleAssistant role = "model"
	roleTool      role = "tool"
	roleSystem    role = "system"
)

type message struct {
	id      uuid.UUID
	role    role
	content string
	at      time.Time
}

type replyMsg struct{ reply Reply }

type replyErrMsg struct{ err error }

type toolResultMsg struct {
	command string
	output  string
	err     error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	modelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	toolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const thinkingPaneWidth = 34

// chatModel is the bubbletea model. The frame is split by the cellflex
// engine: each View builds a node tree, computes it against the
// current terminal size, and sizes the lipgloss panes from the
// computed rectangles.
type chatModel struct {
	cfg     Config
	client  *Client
	logger  *log.Logger
	session uuid.UUID

	input textinput.Model
	spin  spinner.Model

	messages     []message
	thinking     []string
	waiting      bool
	showThinking bool

	width  int
	height int
}

func newChatModel(cfg Config, client *Client, logger *log.Logger) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask anything, ctrl+t toggles thinking, ctrl+c quits"
	ti.Focus()
	ti.CharLimit = 4000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		cfg:     cfg,
		client:  client,
		logger:  logger,
		session: uuid.New(),
		input:   ti,
		spin:    sp,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

// layoutPanes computes the frame geometry for the current terminal
// size: a one-line header, the transcript (plus an optional thinking
// pane) filling the middle, and a three-line input box.
func (m chatModel) layoutPanes() (header, transcript, thinking, input *cellflex.Node) {
	header = cellflex.NewNode().Height(1)
	transcript = cellflex.NewNode().Grow(1)
	input = cellflex.NewNode().Height(3)

	body := cellflex.Row(transcript).Grow(1)
	if m.showThinking && m.width > thinkingPaneWidth*2 {
		thinking = cellflex.NewNode().Width(thinkingPaneWidth)
		body.AddChild(thinking)
	}

	root := cellflex.Col(header, body, input)
	cellflex.Compute(root, m.width, m.height)
	return header, transcript, thinking, input
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 6; w > 0 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			m.showThinking = !m.showThinking
			return m, nil
		case "enter":
			prompt := strings.TrimSpace(m.input.Value())
			if prompt == "" || m.waiting {
				return m, nil
			}
			m.append(roleUser, prompt)
			m.input.Reset()
			m.waiting = true
			m.logger.Debug("prompt sent", "session", m.session, "chars", len(prompt))
			return m, tea.Batch(m.spin.Tick, m.generateCmd(prompt))
		}

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case replyMsg:
		m.waiting = false
		m.append(roleAssistant, msg.reply.Response)
		if t := strings.TrimSpace(msg.reply.Thinking); t != "" {
			m.thinking = append(m.thinking, t)
		}
		commands := ExtractToolCommands(msg.reply.Response)
		if len(commands) == 0 {
			return m, nil
		}
		cmds := make([]tea.Cmd, len(commands))
		for i, command := range commands {
			cmds[i] = m.runToolCmd(command)
		}
		return m, tea.Batch(cmds...)

	case replyErrMsg:
		m.waiting = false
		m.logger.Error("generate failed", "err", msg.err)
		m.append(roleSystem, fmt.Sprintf("error: %v\nIs the model server running at %s?", msg.err, m.cfg.BaseURL))
		return m, nil

	case toolResultMsg:
		if msg.err != nil {
			m.logger.Warn("tool failed", "command", msg.command, "err", msg.err)
			m.append(roleTool, fmt.Sprintf("$ %s\n%v", msg.command, msg.err))
		} else {
			m.append(roleTool, fmt.Sprintf("$ %s\n%s", msg.command, msg.output))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) append(r role, content string) {
	m.messages = append(m.messages, message{
		id:      uuid.New(),
		role:    r,
		content: content,
		at:      time.Now(),
	})
}

func (m chatModel) generateCmd(prompt string) tea.Cmd {
	client := m.client
	timeout := time.Duration(m.cfg.TimeoutSeconds) * time.Second
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := client.Generate(ctx, prompt)
		if err != nil {
			return replyErrMsg{err: err}
		}
		return replyMsg{reply: reply}
	}
}

func (m chatModel) runToolCmd(command string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		out, err := RunTool(ctx, command)
		return toolResultMsg{command: command, output: out, err: err}
	}
}

func (m chatModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	header, transcript, thinking, input := m.layoutPanes()

	title := headerStyle.Render("cellflex chat")
	status := dimStyle.Render(fmt.Sprintf("%s @ %s", m.cfg.Model, m.cfg.BaseURL))
	gap := header.W - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	headerLine := title + strings.Repeat(" ", gap) + status

	parts := []string{m.renderTranscript(transcript)}
	if thinking != nil {
		parts = append(parts, m.renderThinking(thinking))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	prompt := m.input.View()
	if m.waiting {
		prompt = m.spin.View() + " waiting for model..."
	}
	inputBox := paneStyle.Width(input.W - 2).Height(input.H - 2).Render(prompt)

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, body, inputBox)
}

// renderTranscript paints the message history into the transcript
// pane, wrapped to the pane's interior and tailed to fit.
func (m chatModel) renderTranscript(pane *cellflex.Node) string {
	innerW := pane.W - 2
	innerH := pane.H - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	var lines []string
	for _, msg := range m.messages {
		prefix := string(msg.role) + " ▸ "
		switch msg.role {
		case roleUser:
			prefix = userStyle.Render(prefix)
		case roleAssistant:
			prefix = modelStyle.Render(prefix)
		case roleTool:
			prefix = toolStyle.Render(prefix)
		case roleSystem:
			prefix = errStyle.Render(prefix)
		}
		lines = append(lines, prefix+dimStyle.Render(msg.at.Format("15:04:05")))
		lines = append(lines, cellflex.Wrap(msg.content, innerW)...)
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		lines = []string{"Welcome to cellflex chat. Ask anything, or request tool runs.", ""}
	}
	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}
	return paneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m chatModel) renderThinking(pane *cellflex.Node) string {
	innerW := pane.W - 2
	innerH := pane.H - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	lines := []string{dimStyle.Render("thinking")}
	for _, t := range m.thinking {
		lines = append(lines, cellflex.Wrap(t, innerW)...)
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}
	return paneStyle.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}
