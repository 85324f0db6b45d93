package gfa

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates an unparsable GFA record. Use
// errors.Is(err, ErrMalformedInput); the returned error additionally wraps
// the byte offset of the offending line via %w-chained MalformedInputAt.
var ErrMalformedInput = errors.New("gfa: malformed input")

// MalformedInputAt carries the byte offset of a malformed record, per
// spec §7 ("MalformedInput (fatal): unparsable record; includes byte
// offset").
type MalformedInputAt struct {
	Offset int64
	Reason string
}

func (e *MalformedInputAt) Error() string {
	return fmt.Sprintf("gfa: malformed input at byte %d: %s", e.Offset, e.Reason)
}

func (e *MalformedInputAt) Unwrap() error { return ErrMalformedInput }

func malformedf(offset int64, format string, args ...any) error {
	return &MalformedInputAt{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// Warning is a recoverable, user-visible condition accumulated during
// ingest (spec §7: warnings accumulate in a collaborator-visible channel,
// the core never fails ingest because of them).
type Warning struct {
	Offset int64
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("gfa: warning at byte %d: %s", w.Offset, w.Reason)
}
