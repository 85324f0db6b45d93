package growth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/abundance"
	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/group"
	"github.com/katalvlaran/pangrowth/growth"
	"github.com/katalvlaran/pangrowth/pathset"
	"github.com/stretchr/testify/require"
)

const smallGraph = `S	1	AAA
S	2	CC
S	3	GGGG
L	1	+	2	+	0M
L	2	+	3	+	0M
P	HG1#1#chr1	1+,2+,3+	*
P	HG2#1#chr1	1+,2+	*
P	HG3#1#chr1	2+,3+	*
`

func buildSmallTable(t *testing.T) *abundance.Table {
	t.Helper()
	g, _, err := gfa.Parse(strings.NewReader(smallGraph))
	require.NoError(t, err)
	src := pathset.NewSource(g)
	r, _, err := group.NewResolver(group.ByPath, g.Paths.Names(), nil, nil, nil)
	require.NoError(t, err)
	tbl, err := abundance.Build(context.Background(), src, g.LinkGraph, r)
	require.NoError(t, err)
	return tbl
}

func permutations(n int) [][]int32 {
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = int32(i)
	}
	var out [][]int32
	var permute func(k int)
	permute = func(k int) {
		if k == len(ids) {
			cp := make([]int32, len(ids))
			copy(cp, ids)
			out = append(out, cp)
			return
		}
		for i := k; i < len(ids); i++ {
			ids[k], ids[i] = ids[i], ids[k]
			permute(k + 1)
			ids[k], ids[i] = ids[i], ids[k]
		}
	}
	permute(0)
	return out
}

// TestPermutationAverageMatchesExpected grounds P6: averaging the
// observed ordered growth curve over every permutation of a small group
// set reproduces the closed-form Expected curve exactly.
func TestPermutationAverageMatchesExpected(t *testing.T) {
	tbl := buildSmallTable(t)
	perms := permutations(int(tbl.NumGroups))
	require.Len(t, perms, 6)

	sum := make([]float64, tbl.NumGroups+1)
	for _, perm := range perms {
		g := growth.OrderedNodeGrowth(tbl, perm)
		for n, v := range g {
			sum[n] += float64(v)
		}
	}
	avg := make([]float64, len(sum))
	for n := range sum {
		avg[n] = sum[n] / float64(len(perms))
	}

	weights := make([]float64, tbl.NumGroups+1)
	for _, k := range tbl.NodeCoverage {
		weights[k]++
	}
	expected := growth.Expected(weights)

	require.InDeltaSlice(t, expected, avg, 1e-9)
}

func TestOrderedGrowthEndpoints(t *testing.T) {
	tbl := buildSmallTable(t)
	perm := []int32{0, 1, 2}
	out := growth.OrderedNodeGrowth(tbl, perm)
	require.EqualValues(t, 0, out[0])
	require.EqualValues(t, tbl.NumNodes, out[len(out)-1])
}

func TestOrderedThresholdDegenerateMatchesOrdered(t *testing.T) {
	tbl := buildSmallTable(t)
	perm := []int32{2, 0, 1}
	plain := growth.OrderedNodeGrowth(tbl, perm)
	thresholded := growth.OrderedThresholdNodeGrowth(tbl, perm, 1, 0)
	require.Equal(t, plain, thresholded)
}
