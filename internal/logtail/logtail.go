package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single log line; longer lines fail the read.
const maxLineBytes = 1024 * 1024

// Tail returns the last n lines of r in file order. n <= 0 returns every
// line. Lines not containing match are skipped before counting.
func Tail(r io.Reader, n int, match string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var all []string
	var ring []string
	if n > 0 {
		ring = make([]string, 0, n)
	}
	next := 0
	for scanner.Scan() {
		line := scanner.Text()
		if match != "" && !strings.Contains(line, match) {
			continue
		}
		switch {
		case n <= 0:
			all = append(all, line)
		case len(ring) < n:
			ring = append(ring, line)
		default:
			ring[next] = line
			next = (next + 1) % n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if n <= 0 {
		return all, nil
	}
	// Once full, next points at the oldest line.
	return append(ring[next:len(ring):len(ring)], ring[:next]...), nil
}

// ReadFile tails the log file at path. A missing file yields no lines.
func ReadFile(path string, n int, match string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()
	return Tail(file, n, match)
}
