package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/source"
	"github.com/atomicstack/popup-launcher/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type recordingSpawner struct {
	argv [][]string
	err  error
}

func (r *recordingSpawner) Spawn(argv []string) (int, error) {
	r.argv = append(r.argv, argv)
	if r.err != nil {
		return 0, r.err
	}
	return 4242, nil
}

// scripted returns a runner that replays msgs against the model synchronously.
func scripted(msgs ...tea.Msg) runner {
	return func(m *ui.Model, _ ...tea.ProgramOption) (*ui.Model, error) {
		h := ui.NewHarness(m)
		h.Init()
		for _, msg := range msgs {
			h.Send(msg)
		}
		return h.Model(), nil
	}
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func binDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	}
	return dir
}

func stubTTY(t *testing.T) {
	t.Helper()
	orig := openTTY
	t.Cleanup(func() { openTTY = orig })
	openTTY = func() (*os.File, error) {
		return os.CreateTemp(t.TempDir(), "tty")
	}
}

func TestRunSpawnsSelectedProgram(t *testing.T) {
	dir := binDir(t, "firefox", "fish", "vim")
	spawner := &recordingSpawner{}
	var out bytes.Buffer
	env := Env{Stdout: &out, Environ: []string{"PATH=" + dir}, Spawner: spawner}

	err := run(Config{}, env, scripted(typed("fire"), keyPress(tea.KeyEnter)))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"firefox"}}, spawner.argv)
	require.Empty(t, out.String())
}

func TestRunSpawnsFreeformCommand(t *testing.T) {
	spawner := &recordingSpawner{}
	env := Env{Environ: []string{"PATH=" + binDir(t, "vim")}, Spawner: spawner}

	err := run(Config{}, env, scripted(typed("notify-send #general C:\\tmp"), keyPress(tea.KeyEnter)))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"notify-send", "#general", `C:\tmp`}}, spawner.argv)
}

func TestRunPrintsPipedSelection(t *testing.T) {
	stubTTY(t)
	spawner := &recordingSpawner{}
	var out bytes.Buffer
	env := Env{Stdin: strings.NewReader("alpha\nbeta\n"), Stdout: &out, Spawner: spawner}

	err := run(Config{Piped: true}, env, scripted(keyPress(tea.KeyRight), keyPress(tea.KeyEnter)))
	require.NoError(t, err)
	require.Equal(t, "beta\n", out.String())
	require.Empty(t, spawner.argv)
}

func TestRunCancelHasNoEffect(t *testing.T) {
	stubTTY(t)
	spawner := &recordingSpawner{}
	var out bytes.Buffer
	env := Env{Stdin: strings.NewReader("alpha\n"), Stdout: &out, Spawner: spawner}

	err := run(Config{Piped: true}, env, scripted(typed("al"), keyPress(tea.KeyEsc)))
	require.NoError(t, err)
	require.Empty(t, out.String())
	require.Empty(t, spawner.argv)
}

func TestRunReportsSpawnFailureOnce(t *testing.T) {
	boom := errors.New("permission denied")
	spawner := &recordingSpawner{err: boom}
	var out bytes.Buffer
	env := Env{Stdout: &out, Environ: []string{"PATH=" + binDir(t, "firefox")}, Spawner: spawner}

	err := run(Config{}, env, scripted(keyPress(tea.KeyEnter), keyPress(tea.KeyEnter)))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "launch firefox")
	require.Equal(t, [][]string{{"firefox"}}, spawner.argv)
	require.Empty(t, out.String())
}

func TestRunMissingSearchPath(t *testing.T) {
	err := run(Config{}, Env{Spawner: &recordingSpawner{}}, scripted())
	require.ErrorIs(t, err, source.ErrNoSearchPath)
}

func TestRunFastStartLoadsInProgram(t *testing.T) {
	spawner := &recordingSpawner{}
	env := Env{Environ: []string{"PATH=" + binDir(t, "htop")}, Spawner: spawner}

	err := run(Config{Fast: true}, env, scripted(keyPress(tea.KeyEnter)))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"htop"}}, spawner.argv)
}

func TestRunFastStartReportsLoadFailure(t *testing.T) {
	err := run(Config{Fast: true}, Env{Spawner: &recordingSpawner{}}, scripted())
	require.ErrorIs(t, err, source.ErrNoSearchPath)
}

func TestRunFailsWithoutTerminal(t *testing.T) {
	orig := openTTY
	t.Cleanup(func() { openTTY = orig })
	boom := errors.New("no tty")
	openTTY = func() (*os.File, error) { return nil, boom }

	env := Env{Stdin: strings.NewReader("a\n"), Spawner: &recordingSpawner{}}
	err := run(Config{Piped: true}, env, scripted())
	require.ErrorIs(t, err, boom)
}

func TestRunPropagatesProgramError(t *testing.T) {
	boom := errors.New("program failed")
	env := Env{Environ: []string{"PATH=" + binDir(t, "vim")}, Spawner: &recordingSpawner{}}
	err := run(Config{}, env, func(*ui.Model, ...tea.ProgramOption) (*ui.Model, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestProgramOptionsUseTTYWhenPiped(t *testing.T) {
	stubTTY(t)
	plain, err := openTerminal(false)
	require.NoError(t, err)
	require.Len(t, plain.programOptions(), 1)
	require.NoError(t, plain.Close())

	piped, err := openTerminal(true)
	require.NoError(t, err)
	require.Len(t, piped.programOptions(), 3)
	require.NoError(t, piped.Close())
}
