// File: histogram.go
// Role: bucket every node and edge by how many of the G groups contain it.
// Determinism: Build is a single pass over abundance.Table's coverage
//   arrays; its result depends only on those arrays, never on build order.

package histogram

import "github.com/katalvlaran/pangrowth/abundance"

// Histogram buckets nodes and edges by coverage class k = 0..NumGroups.
type Histogram struct {
	NumGroups int32

	// NodeCount[k] is the number of nodes present in exactly k groups.
	NodeCount []int64
	// NodeBP[k] is the total bp length of nodes present in exactly k
	// groups (length-weighted histogram).
	NodeBP []int64
	// EdgeCount[k] is the number of edges present in exactly k groups.
	// Edges carry no bp weight by convention; there is no EdgeBP.
	EdgeCount []int64
}

// Build computes the histogram from t's coverage arrays.
//
// Complexity: O(|nodes| + |edges|).
func Build(t *abundance.Table) Histogram {
	h := Histogram{
		NumGroups: t.NumGroups,
		NodeCount: make([]int64, t.NumGroups+1),
		NodeBP:    make([]int64, t.NumGroups+1),
		EdgeCount: make([]int64, t.NumGroups+1),
	}
	for id, k := range t.NodeCoverage {
		h.NodeCount[k]++
		h.NodeBP[k] += int64(t.NodeBP[id])
	}
	for _, k := range t.EdgeCoverage {
		h.EdgeCount[k]++
	}
	return h
}

// NodeMass returns the total node count and total bp summed across every
// coverage class; callers use this to check mass conservation against
// t.NumNodes and the sum of all segment lengths.
func (h Histogram) NodeMass() (count int64, bp int64) {
	for k := range h.NodeCount {
		count += h.NodeCount[k]
		bp += h.NodeBP[k]
	}
	return count, bp
}

// EdgeMass returns the total edge count summed across every coverage
// class; callers use this to check mass conservation against t.NumEdges.
func (h Histogram) EdgeMass() (count int64) {
	for _, c := range h.EdgeCount {
		count += c
	}
	return count
}
