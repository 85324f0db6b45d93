// File: ordered.go
// Role: observed growth along one concrete group permutation (C7), via a
//   counting-sort bucket sweep: each feature's first-seen rank is
//   distributed into a bucket array in one pass, then a prefix sum turns
//   per-rank novelty counts into a cumulative growth curve.

package growth

import "github.com/katalvlaran/pangrowth/abundance"

// OrderedNodeGrowth returns, for n = 0..len(perm), the number of distinct
// nodes visited among the first n groups of perm (a permutation of group
// ids 0..NumGroups-1).
func OrderedNodeGrowth(t *abundance.Table, perm []int32) []int64 {
	return orderedGrowth(t.NumNodes, perm, t.ForEachNodeInGroup)
}

// OrderedEdgeGrowth is OrderedNodeGrowth for edges.
func OrderedEdgeGrowth(t *abundance.Table, perm []int32) []int64 {
	return orderedGrowth(t.NumEdges, perm, t.ForEachEdgeInGroup)
}

func orderedGrowth(numFeatures int32, perm []int32, forEachInGroup func(g int32, visit func(id int32))) []int64 {
	n := len(perm)
	visited := make([]bool, numFeatures)
	bucket := make([]int64, n+1)
	for rank, g := range perm {
		forEachInGroup(g, func(id int32) {
			if !visited[id] {
				visited[id] = true
				bucket[rank+1]++
			}
		})
	}
	out := make([]int64, n+1)
	var running int64
	for i := 0; i <= n; i++ {
		running += bucket[i]
		out[i] = running
	}
	return out
}

// OrderedThresholdNodeGrowth restricts OrderedNodeGrowth to "core"-style
// counting: a node counts toward prefix length n only once it has
// occurred in at least threshold(l, q, n) of the first n groups.
func OrderedThresholdNodeGrowth(t *abundance.Table, perm []int32, l int, q float64) []int64 {
	return orderedThresholdGrowth(t.NumNodes, perm, l, q, t.ForEachNodeInGroup)
}

// OrderedThresholdEdgeGrowth is OrderedThresholdNodeGrowth for edges.
func OrderedThresholdEdgeGrowth(t *abundance.Table, perm []int32, l int, q float64) []int64 {
	return orderedThresholdGrowth(t.NumEdges, perm, l, q, t.ForEachEdgeInGroup)
}

// orderedThresholdGrowth tracks, per feature, a running in-prefix
// coverage count and a countAtCoverage[c] histogram of how many features
// currently sit at coverage c; each step updates both in O(incidences at
// that rank), then answers via a suffix sum over countAtCoverage.
//
// Complexity: O(total incidences * N) in the worst case from the suffix
// sum; acceptable for the group counts this engine targets.
func orderedThresholdGrowth(numFeatures int32, perm []int32, l int, q float64, forEachInGroup func(g int32, visit func(id int32))) []int64 {
	n := len(perm)
	running := make([]int, numFeatures)
	countAtCoverage := make([]int64, n+1)
	countAtCoverage[0] = int64(numFeatures)

	out := make([]int64, n+1)
	for rank := 1; rank <= n; rank++ {
		g := perm[rank-1]
		forEachInGroup(g, func(id int32) {
			c := running[id]
			countAtCoverage[c]--
			running[id] = c + 1
			countAtCoverage[c+1]++
		})
		thresh := threshold(l, q, rank)
		var sum int64
		for c := thresh; c <= rank; c++ {
			sum += countAtCoverage[c]
		}
		out[rank] = sum
	}
	return out
}
