package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// ErrNoSearchPath is returned when scan mode is requested but the search-path
// variable is not set at all.
var ErrNoSearchPath = errors.New("search path variable is not set")

const (
	// SearchPathVar names the environment variable listing directories to scan.
	SearchPathVar = "PATH"

	ModeScan  = "scan"
	ModePiped = "piped"
)

// Options selects where candidates come from.
type Options struct {
	Piped   bool
	Stdin   io.Reader
	Environ []string
}

// Load produces the candidate sequence for a session.
func Load(opts Options) ([]string, error) {
	if opts.Piped {
		if opts.Stdin == nil {
			return nil, fmt.Errorf("read piped input: no reader supplied")
		}
		lines, err := ReadLines(opts.Stdin)
		if err != nil {
			return nil, err
		}
		events.Source.Done(ModePiped, len(lines))
		return lines, nil
	}
	pathList, err := SearchPath(opts.Environ)
	if err != nil {
		return nil, err
	}
	names := Discover(SplitSearchPath(pathList))
	events.Source.Done(ModeScan, len(names))
	return names, nil
}

// SearchPath returns the raw value of the search-path variable. A variable
// that is present but empty is valid and yields no directories.
func SearchPath(environ []string) (string, error) {
	prefix := SearchPathVar + "="
	found := false
	value := ""
	for _, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			// later duplicates win, matching os.Getenv on most platforms
			value = strings.TrimPrefix(entry, prefix)
			found = true
		}
	}
	if !found {
		return "", ErrNoSearchPath
	}
	return value, nil
}

// SplitSearchPath splits a list on the platform separator, dropping empty
// elements.
func SplitSearchPath(list string) []string {
	parts := filepath.SplitList(list)
	dirs := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		dirs = append(dirs, part)
	}
	return dirs
}

// Discover walks each directory and returns the sorted, unique base names of
// every entry found beneath them. Directories are themselves sorted and
// deduplicated first so an aliased entry is walked once. Entries that cannot
// be read are skipped.
func Discover(dirs []string) []string {
	unique := sortedUnique(slices.Clone(dirs))
	events.Source.Scan(unique)
	walked := make(map[string]struct{}, len(unique))
	var names []string
	for _, dir := range unique {
		root := resolveRoot(dir)
		if _, seen := walked[root]; seen {
			continue
		}
		walked[root] = struct{}{}
		names = append(names, scanDir(root)...)
	}
	return sortedUnique(names)
}

// resolveRoot follows a symlinked search directory (for example /bin pointing
// at /usr/bin) so the walk descends into its target.
func resolveRoot(dir string) string {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return dir
	}
	return resolved
}

func scanDir(root string) []string {
	var names []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			events.Source.Skip(path, err)
			return nil
		}
		if path == root {
			return nil
		}
		names = append(names, d.Name())
		return nil
	})
	return names
}

func sortedUnique(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}
