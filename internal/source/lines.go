package source

import (
	"bufio"
	"fmt"
	"io"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

const maxLineBytes = 1 << 20

// ReadLines splits r on line boundaries and returns the lines in input order.
// No sorting or deduplication is applied. A trailing carriage return is
// stripped from each line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read piped input: %w", err)
	}
	events.Source.Read(len(lines))
	return lines, nil
}
