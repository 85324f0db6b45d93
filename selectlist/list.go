// File: list.go
// Role: read one selection list (names, one per line) from an io.Reader.

package selectlist

import (
	"bufio"
	"io"
	"strings"
)

// Read returns the non-comment, non-blank lines of r, in file order, with
// surrounding whitespace trimmed.
func Read(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ReadSet is Read, collected into a lookup set for WithInclude/WithExclude.
func ReadSet(r io.Reader) (map[string]bool, error) {
	names, err := Read(r)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}
