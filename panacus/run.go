// File: run.go
// Role: orchestrates C1 (already ingested into *gfa.Graph) through C7
//   into one Result. Never partially populates Result on a fatal error —
//   Run either returns a fully-built *Result or a nil one with an error.

package panacus

import (
	"context"

	"github.com/katalvlaran/pangrowth/abundance"
	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/group"
	"github.com/katalvlaran/pangrowth/growth"
	"github.com/katalvlaran/pangrowth/histogram"
	"github.com/katalvlaran/pangrowth/pathset"
)

// Run resolves groups, builds the abundance table, and computes the
// histogram and growth curves req asked for.
func Run(ctx context.Context, g *gfa.Graph, req Request) (*Result, []Warning, error) {
	for _, p := range req.thresholds {
		if p.Quorum < 0 || p.Quorum > 1 || p.CoverageFloor < 0 {
			return nil, nil, ErrThresholdShapeMismatch
		}
	}

	var warnings []Warning

	resolver, groupWarnings, err := group.NewResolver(req.mode, g.Paths.Names(), req.include, req.exclude, req.order)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range groupWarnings {
		warnings = append(warnings, Warning{Reason: w.Reason})
	}
	if resolver.NumGroups() == 0 {
		return nil, warnings, ErrEmptySelection
	}

	src := pathset.NewSource(g)
	var buildOpts []abundance.Option
	if req.workers > 0 {
		buildOpts = append(buildOpts, abundance.WithWorkers(req.workers))
	}
	if req.memoryBudget > 0 {
		buildOpts = append(buildOpts, abundance.WithMemoryBudgetBytes(req.memoryBudget))
	}

	table, err := abundance.Build(ctx, src, g.LinkGraph, resolver, buildOpts...)
	if err != nil {
		return nil, warnings, err
	}

	hist := histogram.Build(table)

	res := &Result{
		GroupNames: resolver.GroupNames(),
		Table:      table,
		Histogram:  hist,
		Thresholds: req.thresholds,
	}

	if req.features.Has(Nodes) {
		nodeWeights := growth.ToWeights(hist.NodeCount)
		res.NodeGrowth = growth.Expected(nodeWeights)
		for _, p := range req.thresholds {
			res.NodeThresholdGrowth = append(res.NodeThresholdGrowth, growth.ThresholdExpected(nodeWeights, p.CoverageFloor, p.Quorum))
		}
		if req.permutation != nil {
			res.OrderedNodeGrowth = growth.OrderedNodeGrowth(table, req.permutation)
			for _, p := range req.thresholds {
				res.OrderedNodeThresholdGrowth = append(res.OrderedNodeThresholdGrowth, growth.OrderedThresholdNodeGrowth(table, req.permutation, p.CoverageFloor, p.Quorum))
			}
		}
	}
	if req.features.Has(Edges) {
		edgeWeights := growth.ToWeights(hist.EdgeCount)
		res.EdgeGrowth = growth.Expected(edgeWeights)
		for _, p := range req.thresholds {
			res.EdgeThresholdGrowth = append(res.EdgeThresholdGrowth, growth.ThresholdExpected(edgeWeights, p.CoverageFloor, p.Quorum))
		}
		if req.permutation != nil {
			res.OrderedEdgeGrowth = growth.OrderedEdgeGrowth(table, req.permutation)
			for _, p := range req.thresholds {
				res.OrderedEdgeThresholdGrowth = append(res.OrderedEdgeThresholdGrowth, growth.OrderedThresholdEdgeGrowth(table, req.permutation, p.CoverageFloor, p.Quorum))
			}
		}
	}
	if req.features.Has(BP) {
		bpWeights := growth.ToWeights(hist.NodeBP)
		res.NodeBPGrowth = growth.Expected(bpWeights)
		for _, p := range req.thresholds {
			res.NodeBPThresholdGrowth = append(res.NodeBPThresholdGrowth, growth.ThresholdExpected(bpWeights, p.CoverageFloor, p.Quorum))
		}
	}

	return res, warnings, nil
}
