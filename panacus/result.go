package panacus

import (
	"github.com/katalvlaran/pangrowth/abundance"
	"github.com/katalvlaran/pangrowth/histogram"
)

// Warning mirrors the recoverable, user-visible conditions Run raises
// while resolving groups (group.Warning). Ingest warnings (gfa.Warning)
// are returned by gfa.Parse and are not repeated in Run's stream.
type Warning struct {
	Reason string
}

// Result bundles everything a Run call can produce. Fields left at their
// zero value were not requested by the Request (e.g. ThresholdNode/Edge
// growth are nil unless WithThreshold was given).
type Result struct {
	GroupNames []string

	Table     *abundance.Table
	Histogram histogram.Histogram

	NodeGrowth []float64
	EdgeGrowth []float64
	// NodeBPGrowth is NodeGrowth reweighted by segment bp length instead
	// of by unit count; populated only when Request asked for BP.
	NodeBPGrowth []float64

	// NodeThresholdGrowth[i]/EdgeThresholdGrowth[i] is the threshold
	// growth curve for Request's i'th ThresholdPair. NodeBPThresholdGrowth
	// is the same, bp-weighted, populated only when Request asked for BP.
	Thresholds            []ThresholdPair
	NodeThresholdGrowth   [][]float64
	EdgeThresholdGrowth   [][]float64
	NodeBPThresholdGrowth [][]float64

	OrderedNodeGrowth []int64
	OrderedEdgeGrowth []int64
	// OrderedNodeThresholdGrowth[i]/OrderedEdgeThresholdGrowth[i] is the
	// ordered growth curve restricted to "core"-style counting under
	// Request's i'th ThresholdPair; populated only when both a
	// permutation and thresholds were requested.
	OrderedNodeThresholdGrowth [][]int64
	OrderedEdgeThresholdGrowth [][]int64
}
