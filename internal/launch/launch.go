// Package launch turns the outcome of a selection session into its exit
// effect: printing the choice, spawning it as a process, or doing nothing.
package launch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
)

// ErrEmptyCommand is returned when a spawn is requested for blank text.
var ErrEmptyCommand = errors.New("empty command")

// Kind enumerates exit effects.
type Kind int

const (
	Abort Kind = iota
	Print
	Spawn
)

func (k Kind) String() string {
	switch k {
	case Print:
		return "print"
	case Spawn:
		return "spawn"
	default:
		return "abort"
	}
}

// Effect is what the process does after the interactive session ends.
type Effect struct {
	Kind Kind
	Text string
	Argv []string
}

// Plan maps an outcome to an effect. Piped sessions print the confirmed text;
// scan sessions spawn it. A selected candidate is run as a single command
// name, while freeform text is tokenized into a command and its arguments.
func Plan(out state.Outcome, piped bool) (Effect, error) {
	if out.Kind != state.OutcomeConfirmed {
		return Effect{Kind: Abort}, nil
	}
	if piped {
		return Effect{Kind: Print, Text: out.Text}, nil
	}
	if !out.Freeform {
		if out.Text == "" {
			return Effect{}, ErrEmptyCommand
		}
		return Effect{Kind: Spawn, Text: out.Text, Argv: []string{out.Text}}, nil
	}
	argv, err := Tokenize(out.Text)
	if err != nil {
		return Effect{}, err
	}
	return Effect{Kind: Spawn, Text: out.Text, Argv: argv}, nil
}

// Tokenize splits a command line into argv on runs of whitespace. Quotes,
// backslashes and '#' carry no special meaning and are passed through as
// typed.
func Tokenize(line string) ([]string, error) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

// Spawner starts a process without waiting for it.
type Spawner interface {
	Spawn(argv []string) (pid int, err error)
}

// Execute carries out effect. Print writes the text and a newline to out;
// Spawn hands the argv to spawner.
func Execute(effect Effect, out io.Writer, spawner Spawner) error {
	switch effect.Kind {
	case Print:
		events.Launch.Print(effect.Text)
		if _, err := fmt.Fprintln(out, effect.Text); err != nil {
			return fmt.Errorf("write selection: %w", err)
		}
		return nil
	case Spawn:
		if len(effect.Argv) == 0 {
			return ErrEmptyCommand
		}
		pid, err := spawner.Spawn(effect.Argv)
		if err != nil {
			events.Launch.Error(err)
			return fmt.Errorf("launch %s: %w", effect.Argv[0], err)
		}
		events.Launch.Spawn(effect.Argv, pid)
		return nil
	default:
		return nil
	}
}
