package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/source"
	"github.com/atomicstack/popup-launcher/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Piped           bool
	Bottom          bool
	CaseInsensitive bool
	Lines           int
	Prompt          string
	Fast            bool
}

// Env holds the process resources a session reads from and acts on.
type Env struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Environ []string
	Spawner launch.Spawner
}

// DefaultEnv returns the environment of the running process.
func DefaultEnv() Env {
	return Env{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Environ: os.Environ(),
		Spawner: launch.ProcessSpawner{},
	}
}

// runner drives a model to completion and returns the final model.
type runner func(model *ui.Model, opts ...tea.ProgramOption) (*ui.Model, error)

// Run executes one launcher session: gather candidates, run the menu, then
// print or spawn the confirmed selection.
func Run(cfg Config) error {
	return run(cfg, DefaultEnv(), runProgram)
}

func run(cfg Config, env Env, drive runner) (err error) {
	effect := launch.Effect{Kind: launch.Abort}
	defer func() { events.App.Exit(effect.Kind.String(), err) }()

	model, err := buildModel(cfg, env)
	if err != nil {
		return err
	}

	term, err := openTerminal(cfg.Piped)
	if err != nil {
		return err
	}
	defer term.Close()

	final, err := drive(model, term.programOptions()...)
	if err != nil {
		return err
	}
	effect, err = finish(final, cfg.Piped)
	if err != nil {
		return err
	}
	return launch.Execute(effect, env.Stdout, env.Spawner)
}

// buildModel loads candidates up front, or hands the loader to the model
// when fast start is enabled.
func buildModel(cfg Config, env Env) (*ui.Model, error) {
	opts := ui.Options{
		Prompt:          cfg.Prompt,
		Lines:           cfg.Lines,
		Bottom:          cfg.Bottom,
		CaseInsensitive: cfg.CaseInsensitive,
	}
	loader := func() ([]string, error) {
		return source.Load(source.Options{
			Piped:   cfg.Piped,
			Stdin:   env.Stdin,
			Environ: env.Environ,
		})
	}
	if cfg.Fast {
		return ui.NewLoadingModel(loader, opts), nil
	}
	candidates, err := loader()
	events.Session.Loaded(len(candidates), err)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	return ui.NewModel(candidates, opts), nil
}

// finish turns the model's final state into the exit effect.
func finish(model *ui.Model, piped bool) (launch.Effect, error) {
	outcome, err := model.Result()
	if err != nil {
		return launch.Effect{Kind: launch.Abort}, fmt.Errorf("load candidates: %w", err)
	}
	return launch.Plan(outcome, piped)
}

func runProgram(model *ui.Model, opts ...tea.ProgramOption) (*ui.Model, error) {
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return model, nil
	}
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*ui.Model); ok {
		return m, nil
	}
	return model, nil
}
