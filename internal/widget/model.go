package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/prefs"
)

const uiTick = time.Second

type tickMsg time.Time

// ModelOptions configures the widget UI.
type ModelOptions struct {
	Timeline   *Timeline
	Invalidate func()
	ThemeName  string
	PrefsPath  string
	Now        func() time.Time
}

// Model is the Bubble Tea model of the widget card. It only reads the
// Timeline; the Poller owns refreshing it.
type Model struct {
	timeline   *Timeline
	invalidate func()
	prefsPath  string
	now        func() time.Time

	theme    Theme
	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int

	entry models.TimelineEntry
	seen  int
}

func NewModel(opts ModelOptions) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Invalidate == nil {
		opts.Invalidate = func() {}
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = prefs.DefaultPath()
	}
	return Model{
		timeline:   opts.Timeline,
		invalidate: opts.Invalidate,
		prefsPath:  opts.PrefsPath,
		now:        opts.Now,
		theme:      GetTheme(opts.ThemeName),
		keys:       defaultKeyMap(),
		help:       help.New(),
		entry:      Placeholder(opts.Now()),
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(uiTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m = m.pull()
		return m, tickCmd(uiTick)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		m.invalidate()
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}
	return m, nil
}

// pull copies a newer timeline entry into the model.
func (m Model) pull() Model {
	if m.timeline == nil {
		return m
	}
	n := m.timeline.Refreshes()
	if n == m.seen {
		return m
	}
	if e, ok := m.timeline.Current(); ok {
		m.entry = e
		m.seen = n
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.help.FullHelpView([][]key.Binding{m.keys.bindings()})
	}
	card := Render(m.entry, m.theme)
	out := lipgloss.JoinVertical(lipgloss.Left, card, m.help.ShortHelpView(m.keys.bindings()))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}
