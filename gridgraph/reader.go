package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadPattern reads pattern lines from r, one grid row per line.
// Trailing carriage returns are trimmed and trailing blank lines dropped;
// the lines are returned unvalidated for ParsePattern.
// Returns ErrEmptyGrid if r holds no non-blank line.
func ReadPattern(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read pattern: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	return lines, nil
}
