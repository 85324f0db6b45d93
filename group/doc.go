// Package group resolves each path to a dense group id (C3): by-path,
// by-haplotype (sample#haplotype) or by-sample, honoring inclusion and
// exclusion lists and an optional explicit group-order list.
//
// Resolution happens single-threaded before the abundance builder's
// worker pool is dispatched (spec §5), so Resolver carries no locks: once
// built it is a plain read-only lookup table.
package group
