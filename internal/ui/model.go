package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/clust/internal/client"
	"github.com/yourusername/clust/internal/command"
	"github.com/yourusername/clust/internal/i18n"
	"go.uber.org/zap"
)

// Region sizes in content rows, borders excluded
const (
	statusRows  = 3
	commandRows = 1
	borderRows  = 2

	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the interactive session: Update dispatches one input event,
// View renders the full frame.
type Model struct {
	client    client.ClusterClient
	state     *command.State
	logger    *zap.Logger
	localizer *i18n.Localizer
	keys      KeyMap
	width     int
	height    int
	quitting  bool
}

// refresher is implemented by clients that cache query results
type refresher interface {
	Invalidate()
}

// KeyMap defines key bindings
type KeyMap struct {
	Quit   key.Binding
	Submit key.Binding
	Delete key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "delete"),
		),
	}
}

// NewModel creates a new session model
func NewModel(c client.ClusterClient, logger *zap.Logger, locale string) *Model {
	return &Model{
		client:    c,
		state:     command.NewState(),
		logger:    logger,
		localizer: i18n.NewLocalizer(locale),
		keys:      DefaultKeyMap(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// T translates a message by its ID
func (m *Model) T(messageID string) string {
	return m.localizer.T(messageID)
}

// Input returns the pending command text
func (m *Model) Input() string {
	return m.state.Input
}

// CurrentView returns the view shown in the central region
func (m *Model) CurrentView() command.View {
	return m.state.View
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("Quit requested", zap.String("view", m.state.View.String()))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		input := m.state.Input
		from := m.state.View
		recognised := m.state.HandleCommand()
		if recognised {
			m.refresh()
		}
		m.logger.Debug("Command dispatched",
			zap.String("input", input),
			zap.Bool("recognised", recognised),
			zap.String("from", from.String()),
			zap.String("view", m.state.View.String()),
		)

	case key.Matches(msg, m.keys.Delete):
		m.state.Backspace()

	case msg.Type == tea.KeySpace:
		m.state.Append(' ')

	case msg.Type == tea.KeyRunes && !msg.Alt:
		return m.handleRunes(msg)
	}

	return m, nil
}

// refresh drops cached answers, if the client keeps any, so a view switch
// always shows fresh data
func (m *Model) refresh() {
	if r, ok := m.client.(refresher); ok {
		r.Invalidate()
	}
}

// handleRunes appends typed runes to the command buffer. Several keystrokes
// can arrive as one event, so a quit key anywhere in the batch still ends the
// session; the runes typed before it are kept. Pasted text is taken as is.
func (m *Model) handleRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !msg.Paste {
		for i, r := range msg.Runes {
			if m.isQuitRune(r) {
				m.state.Append(msg.Runes[:i]...)
				m.quitting = true
				m.logger.Info("Quit requested", zap.String("view", m.state.View.String()))
				return m, tea.Quit
			}
		}
	}

	m.state.Append(msg.Runes...)
	return m, nil
}

func (m *Model) isQuitRune(r rune) bool {
	for _, k := range m.keys.Quit.Keys() {
		if k == string(r) {
			return true
		}
	}
	return false
}

// View renders the status, central and command regions
func (m *Model) View() string {
	if m.quitting {
		return m.T("common.goodbye") + "\n"
	}

	inner := m.width - 2
	if inner < 1 {
		inner = 1
	}

	status := regionStyle(ColorPrimary).Width(inner).Render(fitLines([]line{
		{text: m.T("app.title"), style: StyleTitle},
		{text: m.client.Status(), style: StyleStatus},
		{text: m.localizer.TF("app.quit_hint", map[string]interface{}{"Key": m.keys.Quit.Help().Key}), style: StyleSubtitle},
	}, inner, statusRows))

	// The prompt keeps its tail visible so the latest keystrokes always show
	prompt := fmt.Sprintf("%s> %s", m.T("command.title"), m.state.Input)
	cmdLine := regionStyle(ColorSuccess).Width(inner).Render(fitLines([]line{
		{text: truncateLeft(prompt, inner), style: StyleInput},
	}, inner, commandRows))

	regions := []string{status}
	centralRows := m.height - (statusRows + borderRows) - (commandRows + borderRows) - borderRows
	if centralRows > 0 {
		regions = append(regions, m.renderCentral(inner, centralRows))
	}
	regions = append(regions, cmdLine)

	return clampHeight(lipgloss.JoinVertical(lipgloss.Left, regions...), m.height)
}

// renderCentral queries the client for the current view only
func (m *Model) renderCentral(width, rows int) string {
	var (
		title string
		color lipgloss.Color
		body  []line
	)

	switch m.state.View {
	case command.ViewContexts:
		title, color = m.T("views.contexts.title"), ColorWarning
		body = m.numbered(m.client.GetContexts(), color)
	case command.ViewHelp:
		title, color = m.T("views.help.title"), ColorInfo
		body = m.helpLines()
	default:
		title, color = m.T("views.pods.title"), ColorSecondary
		body = m.numbered(m.client.GetPods(), color)
	}

	lines := append([]line{{text: title, style: lipgloss.NewStyle().Bold(true).Foreground(color)}}, body...)
	return regionStyle(color).Width(width).Render(fitLines(lines, width, rows))
}

func (m *Model) numbered(items []string, color lipgloss.Color) []line {
	if len(items) == 0 {
		return []line{{text: m.T("views.empty"), style: StyleTextMuted}}
	}

	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	lines := make([]line, 0, len(items))
	for i, item := range items {
		lines = append(lines, line{text: fmt.Sprintf("%d: %s", i+1, item), style: style})
	}
	return lines
}

func (m *Model) helpLines() []line {
	entry := lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
	return []line{
		{text: m.T("help.heading"), style: StyleHelpHeading},
		{text: m.T("help.pods"), style: entry},
		{text: m.T("help.ctx"), style: entry},
		{text: m.T("help.help"), style: entry},
		{text: m.T("help.quit"), style: entry},
		{text: m.T("help.footer"), style: StyleTextSecondary},
	}
}
