package ui

import (
	"context"
	"errors"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vmgrid/internal/grid"
	"github.com/five82/vmgrid/internal/prefs"
	"github.com/five82/vmgrid/internal/state"
)

// LoadFunc fetches the rows for a new grid instance.
type LoadFunc func(ctx context.Context) (*state.Store, error)

// Options configures the UI.
type Options struct {
	Context context.Context
	// Load is called on start when Store is nil, and again on reload.
	Load      LoadFunc
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// focusArea is the element that receives keyboard input.
type focusArea int

const (
	focusRows focusArea = iota
	focusSearch
	focusFilterButton
	focusHostCell
	focusStatusCell
)

var focusOrder = []focusArea{focusSearch, focusFilterButton, focusHostCell, focusStatusCell, focusRows}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      LoadFunc
	prefsPath string
	prefs     prefs.Prefs
	copy      func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Data state
	store   *state.Store
	loading bool
	loadErr error

	// Grid state
	focus        focusArea
	searchBox    textinput.Model
	hostInput    textinput.Model
	popoverInput textinput.Model
	cursor       int
	offset       int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := Model{
		ctx:          ctx,
		load:         opts.Load,
		prefsPath:    prefsPath,
		prefs:        p,
		copy:         copyFn,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		store:        opts.Store,
		loading:      opts.Store == nil && opts.Load != nil,
		searchBox:    newInput("search hosts"),
		hostInput:    newInput(""),
		popoverInput: newInput("host contains"),
	}
	m.applyTheme(GetTheme(p.Theme))
	m.syncInputs()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	return ti
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.loading {
		return m.loadCmd()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeInputs()
		m.clampCursor()
		return m, nil

	case loadedMsg:
		m.loading = false
		m.loadErr = nil
		m.replaceStore(msg.store)
		return m, nil

	case loadErrMsg:
		m.loading = false
		m.loadErr = msg.err
		log.Printf("load hosts failed: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.store == nil {
		return m.renderPlaceholder()
	}

	return m.renderMain()
}

// replaceStore swaps in freshly loaded rows. Filters typed before a reload
// carry over; edit mode and the popover do not.
func (m *Model) replaceStore(next *state.Store) {
	if m.store != nil && next != nil {
		prev := m.store.Filter()
		next.Apply(grid.Intent{Kind: grid.IntentSetSearchText, Text: prev.SearchText})
		next.Apply(grid.Intent{Kind: grid.IntentSetStatusFilter, Category: prev.StatusFilter})
	}
	m.store = next
	m.hostInput.Blur()
	m.popoverInput.Blur()
	if m.focus == focusHostCell || m.focus == focusStatusCell {
		m.focus = focusRows
	}
	m.cursor = 0
	m.offset = 0
	m.syncInputs()
}

// Messages

type loadedMsg struct {
	store *state.Store
}

type loadErrMsg struct {
	err error
}

// Commands

func (m Model) loadCmd() tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		s, err := load(ctx)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return loadedMsg{store: s}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
