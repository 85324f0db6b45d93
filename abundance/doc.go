// Package abundance builds the per-group presence table (C4): for every
// node and edge, which of the G resolved groups contain it at least once.
//
// Build dispatches one goroutine per group through a bounded
// golang.org/x/sync/errgroup pool. Each goroutine owns a thread-local
// featureSet accumulator for the paths in its group and never touches any
// other goroutine's state, so no lock is needed during the walk itself;
// only after errgroup.Wait() returns does a single owner reduce the G
// per-group sets into the NodeCoverage/EdgeCoverage counts the histogram
// and growth packages consume.
package abundance
