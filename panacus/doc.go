// Package panacus is the counting engine's façade (C8): it resolves a
// Request's functional options, then orchestrates group resolution,
// abundance-table building, histogram reduction and growth computation
// into one Result, mirroring the teacher's builder-config resolution
// pattern (functional options -> a single validated config struct).
package panacus
