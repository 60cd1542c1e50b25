package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o755))
}

func TestDiscoverSortsAndDeduplicates(t *testing.T) {
	root := t.TempDir()
	binA := filepath.Join(root, "a")
	binB := filepath.Join(root, "b")
	touch(t, filepath.Join(binA, "zsh"))
	touch(t, filepath.Join(binA, "awk"))
	touch(t, filepath.Join(binB, "awk"))
	touch(t, filepath.Join(binB, "nested", "deep"))

	got := Discover([]string{binB, binA, binB})
	require.Equal(t, []string{"awk", "deep", "nested", "zsh"}, got)
}

func TestDiscoverIsDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"c", "a", "b", "a2"} {
		touch(t, filepath.Join(root, "bin", name))
	}
	touch(t, filepath.Join(root, "sbin", "b"))
	dirs := []string{filepath.Join(root, "sbin"), filepath.Join(root, "bin")}

	first := Discover(dirs)
	second := Discover(dirs)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a", "a2", "b", "c"}, first)
}

func TestDiscoverSkipsMissingDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "bin", "ls"))

	got := Discover([]string{filepath.Join(root, "missing"), filepath.Join(root, "bin")})
	require.Equal(t, []string{"ls"}, got)
}

func TestDiscoverSkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	touch(t, filepath.Join(root, "bin", "ok"))
	locked := filepath.Join(root, "bin", "locked")
	touch(t, filepath.Join(locked, "hidden"))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	got := Discover([]string{filepath.Join(root, "bin")})
	require.Equal(t, []string{"locked", "ok"}, got)
}

func TestDiscoverFollowsSymlinkedRootOnce(t *testing.T) {
	root := t.TempDir()
	real := filepath.Join(root, "usr", "bin")
	touch(t, filepath.Join(real, "vim"))
	alias := filepath.Join(root, "bin")
	require.NoError(t, os.Symlink(real, alias))

	got := Discover([]string{alias, real})
	require.Equal(t, []string{"vim"}, got)
}

func TestDiscoverEmpty(t *testing.T) {
	require.Empty(t, Discover(nil))
}

func TestSearchPath(t *testing.T) {
	_, err := SearchPath([]string{"HOME=/root"})
	require.ErrorIs(t, err, ErrNoSearchPath)

	value, err := SearchPath([]string{"PATH="})
	require.NoError(t, err)
	require.Equal(t, "", value)

	value, err = SearchPath([]string{"PATH=/usr/bin", "PATHEXT=x", "PATH=/bin"})
	require.NoError(t, err)
	require.Equal(t, "/bin", value)
}

func TestSplitSearchPathDropsEmptyElements(t *testing.T) {
	sep := string(os.PathListSeparator)
	got := SplitSearchPath(strings.Join([]string{"/usr/bin", "", "/bin", " "}, sep))
	require.Equal(t, []string{"/usr/bin", "/bin"}, got)
}

func TestReadLinesPreservesOrder(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("foo\nbar\nfoo\r\n\nalpha"))
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar", "foo", "", "alpha"}, lines)
}

func TestReadLinesEmptyInput(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestReadLinesFailure(t *testing.T) {
	_, err := ReadLines(iotest.ErrReader(os.ErrClosed))
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestLoadSelectsMode(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "true"))

	piped, err := Load(Options{Piped: true, Stdin: strings.NewReader("foo\nbar\n")})
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar"}, piped)

	scanned, err := Load(Options{Environ: []string{"PATH=" + root}})
	require.NoError(t, err)
	require.Equal(t, []string{"true"}, scanned)

	_, err = Load(Options{Environ: []string{}})
	require.ErrorIs(t, err, ErrNoSearchPath)

	_, err = Load(Options{Piped: true})
	require.Error(t, err)
}
