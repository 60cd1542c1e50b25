package ui

import (
	"reflect"

	"github.com/atomicstack/popup-launcher/internal/theme"
	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the display settings the model needs.
type Options struct {
	Prompt          string
	Lines           int
	Bottom          bool
	CaseInsensitive bool
	Width           int
	Height          int
}

// Loader produces candidates asynchronously in fast-start mode.
type Loader func() ([]string, error)

// Model implements the Bubble Tea model for the launcher menu.
type Model struct {
	session uistate.Session
	opts    Options

	loader  Loader
	loading bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	offset      int
	errMsg      string

	keys  keyMap
	caret cursor.Model

	outcome  uistate.Outcome
	err      error
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over an already discovered candidate list.
func NewModel(candidates []string, opts Options) *Model {
	m := newModel(opts)
	m.session = uistate.NewSession(candidates, opts.CaseInsensitive)
	return m
}

// NewLoadingModel builds a model that starts without candidates and fetches
// them with loader once the program runs.
func NewLoadingModel(loader Loader, opts Options) *Model {
	m := newModel(opts)
	m.session = uistate.NewSession(nil, opts.CaseInsensitive)
	m.loader = loader
	m.loading = loader != nil
	return m
}

func newModel(opts Options) *Model {
	m := &Model{
		opts: opts,
		keys: defaultKeyMap(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Input != nil {
		c.TextStyle = *styles.Input
	}
	c.SetChar(" ")
	c.SetMode(cursor.CursorStatic)
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loading {
		cmds = append(cmds, loadCandidatesCmd(m.loader))
	}
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(candidatesLoadedMsg{}): m.handleCandidatesLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Result reports how the session ended. The outcome is OutcomeNone when the
// program stopped for any other reason; err is set when fast-start loading
// failed.
func (m *Model) Result() (uistate.Outcome, error) {
	return m.outcome, m.err
}

// Session exposes the current selection state for renderers and tests.
func (m *Model) Session() uistate.Session {
	return m.session
}

// Loading reports whether candidates are still being fetched.
func (m *Model) Loading() bool {
	return m.loading
}
