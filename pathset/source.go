// File: source.go
// Role: lazy step+edge traversal over a gfa.Graph's path/walk records (C2).
// Determinism: tokenization is a left-to-right scan over the stored raw
//   string; the emitted (step, edgeID) sequence depends only on that
//   string and the frozen interners, never on traversal order across paths.
// Concurrency: Source holds no mutable state of its own; Walk is safe to
//   call concurrently for different (or the same) path ids, which is
//   exactly what the abundance builder's worker pool does.

package pathset

import (
	"github.com/katalvlaran/pangrowth/core"
	"github.com/katalvlaran/pangrowth/gfa"
)

// VisitFunc is called once per step, in path order. edgeFromPrev is the
// canonical edge id between the previous step's exit side and this step's
// entry side; hasEdge is false for a path's first step, since a path's
// first and last steps have no edge on their outer side.
type VisitFunc func(step core.Step, edgeFromPrev int32, hasEdge bool) error

// Source adapts a fully-ingested gfa.Graph into the lazy per-path
// traversal the abundance builder consumes.
type Source struct {
	graph *gfa.Graph
}

// NewSource wraps g. g must already be frozen (gfa.Parse does this).
func NewSource(g *gfa.Graph) *Source {
	return &Source{graph: g}
}

// NumPaths returns the number of interned paths/walks.
func (s *Source) NumPaths() int32 { return s.graph.Paths.Len() }

// Name returns the path/walk name for pathID.
func (s *Source) Name(pathID int32) string { return s.graph.Paths.Name(pathID) }

// Walk traverses pathID's steps in order, invoking visit once per step.
// Returns core.ErrUnknownSegment or core.ErrMalformedStep on a corrupt
// token, or whatever error visit itself returns (propagated verbatim so
// callers can distinguish a hook abort from a traversal failure).
func (s *Source) Walk(pathID int32, visit VisitFunc) error {
	if pathID < 0 || int(pathID) >= len(s.graph.PathRecords) {
		return core.ErrUnknownSegment
	}
	rec := s.graph.PathRecords[pathID]

	var prev core.Step
	havePrev := false
	step := func(st core.Step) error {
		var edgeID int32
		hasEdge := havePrev
		if havePrev {
			edgeID = s.graph.Edges.Canonical(prev.Seg, prev.ExitSide(), st.Seg, st.EntrySide())
		}
		if err := visit(st, edgeID, hasEdge); err != nil {
			return err
		}
		prev, havePrev = st, true
		return nil
	}

	switch rec.Encoding {
	case gfa.PLineEncoding:
		return s.walkPLine(rec.Steps, step)
	case gfa.WLineEncoding:
		return s.walkWLine(rec.Steps, step)
	default:
		return nil
	}
}

func (s *Source) resolveNamed(name string, signByte byte) (core.Step, error) {
	sign, err := signFromByte(signByte)
	if err != nil {
		return core.Step{}, err
	}
	id, err := s.graph.Segments.Lookup(name)
	if err != nil {
		return core.Step{}, err
	}
	return core.Step{Seg: id, Sign: sign}, nil
}

func signFromByte(b byte) (core.Sign, error) {
	switch b {
	case '+':
		return core.Forward, nil
	case '-':
		return core.Reverse, nil
	default:
		return 0, core.ErrMalformedStep
	}
}

// walkPLine scans a comma-separated "seg1+,seg2-,…" token list without
// allocating a []string (strings.Split would allocate one backing slice
// plus N substrings; this scans the original string in place).
func (s *Source) walkPLine(steps string, emit func(core.Step) error) error {
	start := 0
	for i := 0; i <= len(steps); i++ {
		if i == len(steps) || steps[i] == ',' {
			if i > start {
				tok := steps[start:i]
				st, err := s.resolveNamed(tok[:len(tok)-1], tok[len(tok)-1])
				if err != nil {
					return err
				}
				if err := emit(st); err != nil {
					return err
				}
			}
			start = i + 1
		}
	}
	return nil
}

// walkWLine scans a ">"/"<"-prefixed run "(>seg)(<seg)…" string.
func (s *Source) walkWLine(walk string, emit func(core.Step) error) error {
	i, n := 0, len(walk)
	for i < n {
		var sign core.Sign
		switch walk[i] {
		case '>':
			sign = core.Forward
		case '<':
			sign = core.Reverse
		default:
			return core.ErrMalformedStep
		}
		i++
		start := i
		for i < n && walk[i] != '>' && walk[i] != '<' {
			i++
		}
		if i == start {
			return core.ErrMalformedStep
		}
		id, err := s.graph.Segments.Lookup(walk[start:i])
		if err != nil {
			return err
		}
		if err := emit(core.Step{Seg: id, Sign: sign}); err != nil {
			return err
		}
	}
	return nil
}
