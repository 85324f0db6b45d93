package gfa

import "github.com/katalvlaran/pangrowth/core"

// Encoding distinguishes the two step-list textual forms GFA1 permits; both
// decode to the same core.Step sequence (spec §4.2, scenario 6).
type Encoding uint8

const (
	// PLineEncoding is a comma-separated "seg1+,seg2-,…" token list.
	PLineEncoding Encoding = iota
	// WLineEncoding is a ">"/"<"-prefixed run "(>|<)seg(>|<)seg…" string.
	WLineEncoding
)

// PathRecord is one P or W line, stored as raw unparsed text so that
// pathset.Source can walk it lazily.
type PathRecord struct {
	Name     string
	Encoding Encoding
	Steps    string
}

// Graph is a fully-ingested GFA1 graph: the frozen core.LinkGraph plus one
// PathRecord per interned path, indexed by the path's dense id.
type Graph struct {
	*core.LinkGraph
	PathRecords []PathRecord
}
