// File: pansn.go
// Role: PanSN path-name decomposition (sample#haplotype#contig) and the
//   dense path interner.
// Determinism: path ids are assigned in first-Intern-call order.

package core

import "strings"

// PanSN is a path name decomposed per the sample#haplotype#contig
// convention. Fields default to the full name when the separator is
// absent, so callers can always treat PanSN as total.
type PanSN struct {
	Sample    string
	Haplotype string
	Contig    string
}

// ParsePanSN splits name on '#' into at most three PanSN fields. A name
// with fewer than three tokens leaves the trailing fields equal to the
// longest field already formed ("a#b" gives Haplotype and Contig "a#b";
// "ref" gives "ref" for all three), which keeps the sample and haplotype
// keys well-defined even
// for non-PanSN path names (the common "plain path name" case).
func ParsePanSN(name string) PanSN {
	parts := strings.SplitN(name, "#", 3)
	p := PanSN{Sample: parts[0], Haplotype: parts[0], Contig: parts[0]}
	if len(parts) > 1 {
		p.Haplotype = parts[0] + "#" + parts[1]
		p.Contig = p.Haplotype
	}
	if len(parts) > 2 {
		p.Contig = p.Haplotype + "#" + parts[2]
	}
	return p
}

// PathInterner maps path/walk names to dense ids 0..N-1.
type PathInterner struct {
	ids   map[string]int32
	names []string
}

// NewPathInterner returns an empty path interner.
func NewPathInterner() *PathInterner {
	return &PathInterner{ids: make(map[string]int32)}
}

// Intern maps name to a dense id. Re-interning the same name returns
// ErrDuplicatePath (recoverable: the GFA reader skips and counts the path,
// it does not abort ingest).
func (pi *PathInterner) Intern(name string) (int32, error) {
	if name == "" {
		return 0, ErrEmptyPathName
	}
	if id, ok := pi.ids[name]; ok {
		return id, ErrDuplicatePath
	}
	id := int32(len(pi.names))
	pi.ids[name] = id
	pi.names = append(pi.names, name)
	return id, nil
}

// Lookup returns the id for name and whether it was found.
func (pi *PathInterner) Lookup(name string) (int32, bool) {
	id, ok := pi.ids[name]
	return id, ok
}

// Name returns the path name for id, or "" if out of range.
func (pi *PathInterner) Name(id int32) string {
	if id < 0 || int(id) >= len(pi.names) {
		return ""
	}
	return pi.names[id]
}

// Len returns the number of interned paths.
func (pi *PathInterner) Len() int32 {
	return int32(len(pi.names))
}

// Names returns all interned path names in id order. The returned slice
// is owned by the caller.
func (pi *PathInterner) Names() []string {
	out := make([]string, len(pi.names))
	copy(out, pi.names)
	return out
}
