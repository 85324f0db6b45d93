// Package pangrowth is a pangenome graph coverage and growth counting
// engine.
//
// It reads a GFA1 file into a frozen, densely-interned graph (core, gfa),
// groups the graph's paths by path, haplotype, or sample (group), builds
// a per-group node/edge presence table with a bounded worker pool
// (abundance), and from that table computes coverage histograms
// (histogram) and pangenome growth curves — both the closed-form expected
// curve and its threshold-filtered variant (growth), plus the observed
// growth along one fixed visiting order (also growth).
//
// panacus ties these stages into a single Run call; cmd/panacus wraps
// Run in a cobra CLI with hist/growth/histgrowth/ordered-histgrowth/
// table/info/report subcommands, reportio renders results as TSV, and
// reportcfg/selectlist load the YAML report configuration and the
// include/exclude/order files the CLI flags point at.
//
//	go get github.com/katalvlaran/pangrowth
package pangrowth
