// Package core defines the dense identifier space a pangenome graph is
// analyzed over: segment and path interning, PanSN name decomposition, and
// bidirectional edge canonicalization.
//
// Everything here is data-model, not algorithm. The package answers one
// question for every other package in this module: given a name or an
// oriented pair of segment-sides, what dense integer identifies it?
//
//   - SegmentInterner  — segment name/length  -> dense segment id
//   - PathInterner     — path/walk name       -> dense path id (+ PanSN)
//   - EdgeInterner     — oriented side pair    -> dense canonical edge id
//   - LinkGraph        — the three interners plus L-record bookkeeping,
//     built once (single-threaded) during GFA ingest and frozen afterward.
//
// Interning is idempotent and total during ingest; once ingest completes,
// LinkGraph is read-only and safe for concurrent Lookup calls from the
// abundance builder's worker pool (mirrors the teacher's separate-lock,
// read-mostly discipline in core.Graph, adapted to append-only interners).
package core
