package panacus

import "errors"

// Sentinel errors for request validation and orchestration failures.
// Callers branch with errors.Is; see core/gfa/abundance for the
// underlying ingest and build errors that Run propagates verbatim.
var (
	// ErrEmptySelection indicates the request's include list, after
	// exclusion, selects zero paths.
	ErrEmptySelection = errors.New("panacus: selection resolves to zero paths")

	// ErrThresholdShapeMismatch indicates Run was given a Quorum outside
	// [0,1] or a negative CoverageFloor. cmd/panacus also wraps it when the
	// -l and -q lists differ in length.
	ErrThresholdShapeMismatch = errors.New("panacus: threshold parameters out of range")
)
