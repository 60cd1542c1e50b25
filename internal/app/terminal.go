package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ttyPath = "/dev/tty"

var openTTY = func() (*os.File, error) {
	return os.OpenFile(ttyPath, os.O_RDWR, 0)
}

// terminal is where the menu is drawn and read from. When candidates arrive
// on stdin the controlling terminal is opened directly so stdin and stdout
// stay free for data.
type terminal struct {
	tty *os.File
}

func openTerminal(piped bool) (*terminal, error) {
	if !piped {
		return &terminal{}, nil
	}
	tty, err := openTTY()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ttyPath, err)
	}
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(tty))
	return &terminal{tty: tty}, nil
}

func (t *terminal) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if t.tty != nil {
		opts = append(opts, tea.WithInput(t.tty), tea.WithOutput(t.tty))
	}
	return opts
}

func (t *terminal) Close() error {
	if t == nil || t.tty == nil {
		return nil
	}
	return t.tty.Close()
}
