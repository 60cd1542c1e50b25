package ui

import (
	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// candidatesLoadedMsg carries the result of a fast-start load.
type candidatesLoadedMsg struct {
	candidates []string
	err        error
}

func loadCandidatesCmd(loader Loader) tea.Cmd {
	return func() tea.Msg {
		candidates, err := loader()
		if err != nil {
			logging.Error(err)
		}
		return candidatesLoadedMsg{candidates: candidates, err: err}
	}
}

func (m *Model) handleCandidatesLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(candidatesLoadedMsg)
	if !ok || !m.loading {
		return nil
	}
	m.loading = false
	events.Session.Loaded(len(update.candidates), update.err)
	if update.err != nil {
		m.err = update.err
		m.quitting = true
		return tea.Quit
	}
	if m.errMsg == loadingNotice {
		m.errMsg = ""
	}
	m.session = m.session.WithCandidates(update.candidates, m.opts.CaseInsensitive)
	m.syncViewport()
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	return nil
}
