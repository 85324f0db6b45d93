package core

import "errors"

// Sentinel errors for the core package. Callers branch with errors.Is;
// sentinels are never wrapped with formatted strings at definition site.
var (
	// ErrEmptySegmentName indicates an S-record with a blank name.
	ErrEmptySegmentName = errors.New("core: segment name is empty")

	// ErrDuplicateSegment indicates the same segment name was interned
	// twice with a conflicting length.
	ErrDuplicateSegment = errors.New("core: duplicate segment with conflicting length")

	// ErrUnknownSegment indicates a step or link referenced a segment name
	// that was never interned during ingest (I1 violation).
	ErrUnknownSegment = errors.New("core: unknown segment")

	// ErrMalformedStep indicates an oriented step token carried no valid
	// orientation marker: a trailing '+'/'-' in a P-line step or L-record,
	// or a leading '>'/'<' in a W-line walk.
	ErrMalformedStep = errors.New("core: malformed step orientation")

	// ErrEmptyPathName indicates a P/W record with a blank name.
	ErrEmptyPathName = errors.New("core: path name is empty")

	// ErrDuplicatePath indicates a path name was interned twice. This is a
	// recoverable condition for GFA ingest (the offending path is skipped
	// and counted); the sentinel exists so callers can errors.Is it.
	ErrDuplicatePath = errors.New("core: duplicate path name")

	// ErrBluntnessViolated indicates an L-record overlap other than "0M"
	// or "*" — the engine assumes a blunt graph and does not attempt CIGAR
	// trimming.
	ErrBluntnessViolated = errors.New("core: link overlap is not blunt (0M or *)")
)
