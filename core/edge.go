// File: edge.go
// Role: canonical edge identity over oriented (segment,side) pairs (I2).
// Determinism:
//   - Canonical(a,b) is symmetric: Canonical(u,ou,v,ov) == Canonical(v,ov,u,ou).
//   - Edge ids are dense, assigned in first-seen order of the canonical key.
// Concurrency:
//   - Canonical is called from the GFA reader (single-threaded, for L-records)
//     and from every abundance-builder worker (concurrently, once per edge
//     event during path traversal); guarded by a single mutex. Edge identity
//     is the only place orientation affects feature identity (spec §4.4).

package core

import "sync"

// edgeKey packs two (segment,side) endpoints into one comparable value
// with the smaller endpoint first, so {u,v} and {v,u} hash identically.
type edgeKey struct {
	segA, segB   int32
	sideA, sideB Side
}

func newEdgeKey(segU int32, sideU Side, segV int32, sideV Side) edgeKey {
	if segU < segV || (segU == segV && sideU <= sideV) {
		return edgeKey{segA: segU, sideA: sideU, segB: segV, sideB: sideV}
	}
	return edgeKey{segA: segV, sideA: sideV, segB: segU, sideB: sideU}
}

// EdgeEndpoints names the two oriented sides a canonical edge connects,
// as returned by EdgeInterner.Endpoints.
type EdgeEndpoints struct {
	SegA int32
	SegB int32
	SideA Side
	SideB Side
}

// EdgeInterner canonicalizes unordered (segment,side) pairs into dense
// edge ids, caching the result so repeated traversal of the same link
// (from either direction, by any number of paths) resolves to one id.
type EdgeInterner struct {
	mu        sync.Mutex
	ids       map[edgeKey]int32
	endpoints []EdgeEndpoints
}

// NewEdgeInterner returns an empty edge interner.
func NewEdgeInterner() *EdgeInterner {
	return &EdgeInterner{ids: make(map[edgeKey]int32)}
}

// Canonical returns the dense edge id for the link between (segU,sideU)
// and (segV,sideV), creating one on first sight. Safe for concurrent
// callers; this is the only mutable shared state path-traversal workers
// touch outside their own thread-local accumulator.
func (ei *EdgeInterner) Canonical(segU int32, sideU Side, segV int32, sideV Side) int32 {
	k := newEdgeKey(segU, sideU, segV, sideV)

	ei.mu.Lock()
	defer ei.mu.Unlock()
	if id, ok := ei.ids[k]; ok {
		return id
	}
	id := int32(len(ei.endpoints))
	ei.ids[k] = id
	ei.endpoints = append(ei.endpoints, EdgeEndpoints{
		SegA: k.segA, SideA: k.sideA, SegB: k.segB, SideB: k.sideB,
	})
	return id
}

// Len returns the number of distinct canonical edges seen so far.
func (ei *EdgeInterner) Len() int32 {
	ei.mu.Lock()
	defer ei.mu.Unlock()
	return int32(len(ei.endpoints))
}

// Endpoints returns the stored endpoint pair for edge id, or the zero
// value and false if id is out of range.
func (ei *EdgeInterner) Endpoints(id int32) (EdgeEndpoints, bool) {
	ei.mu.Lock()
	defer ei.mu.Unlock()
	if id < 0 || int(id) >= len(ei.endpoints) {
		return EdgeEndpoints{}, false
	}
	return ei.endpoints[id], true
}
