package ui

import (
	"bytes"
	"testing"
	"time"

	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestProgramConfirmsTypedSelection(t *testing.T) {
	m := NewModel([]string{"firefox", "fish", "vim"}, Options{Prompt: "run"})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Type("vi")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(*Model)
	if !ok {
		t.Fatalf("expected *Model from program")
	}
	outcome, err := final.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != uistate.OutcomeConfirmed || outcome.Text != "vim" {
		t.Fatalf("expected vim confirmed, got %+v", outcome)
	}
}

func TestProgramLoadsInBackground(t *testing.T) {
	m := NewLoadingModel(func() ([]string, error) { return []string{"htop"}, nil }, Options{})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("htop"))
	}, teatest.WithDuration(3*time.Second))
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(*Model)
	if outcome, _ := final.Result(); outcome.Text != "htop" {
		t.Fatalf("expected htop confirmed, got %+v", outcome)
	}
}
