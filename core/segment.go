// File: segment.go
// Role: dense segment-name <-> id interning plus per-segment length storage.
// Determinism: ids are assigned in first-Intern-call order; Lookup never
//   changes that order. Len()/Length() are O(1).
// Concurrency: Intern is called single-threaded during GFA ingest; Lookup
//   and Length are safe for concurrent readers once ingest has completed
//   (all methods take mu; Freeze is advisory and Intern does not check it).

package core

import "sync"

// SegmentInterner maps segment names to dense ids 0..N-1 and stores each
// segment's length in base pairs, indexed by id.
type SegmentInterner struct {
	mu      sync.RWMutex
	ids     map[string]int32
	names   []string
	lengths []int32
	frozen  bool
}

// NewSegmentInterner returns an empty interner ready to accept Intern calls.
func NewSegmentInterner() *SegmentInterner {
	return &SegmentInterner{ids: make(map[string]int32)}
}

// Intern maps name to a dense id, creating one on first sight. Intern is
// idempotent: interning the same name twice with the same length returns
// the existing id; interning it with a different length is rejected with
// ErrDuplicateSegment since a segment's length is immutable after ingest.
//
// Complexity: O(1) amortized.
func (si *SegmentInterner) Intern(name string, length int32) (int32, error) {
	if name == "" {
		return 0, ErrEmptySegmentName
	}
	si.mu.Lock()
	defer si.mu.Unlock()

	if id, ok := si.ids[name]; ok {
		if si.lengths[id] != length {
			return 0, ErrDuplicateSegment
		}
		return id, nil
	}
	id := int32(len(si.names))
	si.ids[name] = id
	si.names = append(si.names, name)
	si.lengths = append(si.lengths, length)
	return id, nil
}

// Lookup returns the dense id for name, or ErrUnknownSegment if name was
// never interned. Safe for concurrent callers once ingest has completed.
func (si *SegmentInterner) Lookup(name string) (int32, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()
	id, ok := si.ids[name]
	if !ok {
		return 0, ErrUnknownSegment
	}
	return id, nil
}

// Len returns the number of interned segments, |S|.
func (si *SegmentInterner) Len() int32 {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return int32(len(si.names))
}

// Length returns the length in base pairs of segment id, or 0 if id is out
// of range (callers are expected to only pass ids returned by Intern/Lookup).
func (si *SegmentInterner) Length(id int32) int32 {
	si.mu.RLock()
	defer si.mu.RUnlock()
	if id < 0 || int(id) >= len(si.lengths) {
		return 0
	}
	return si.lengths[id]
}

// Name returns the original segment name for id, or "" if out of range.
func (si *SegmentInterner) Name(id int32) string {
	si.mu.RLock()
	defer si.mu.RUnlock()
	if id < 0 || int(id) >= len(si.names) {
		return ""
	}
	return si.names[id]
}

// Freeze marks the interner read-only. Purely advisory today (Intern is
// otherwise still callable); it exists so the GFA reader can document the
// ingest/query boundary explicitly (I5-style append-only-then-frozen).
func (si *SegmentInterner) Freeze() {
	si.mu.Lock()
	si.frozen = true
	si.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (si *SegmentInterner) Frozen() bool {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.frozen
}
