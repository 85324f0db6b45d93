package histogram_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/abundance"
	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/group"
	"github.com/katalvlaran/pangrowth/histogram"
	"github.com/katalvlaran/pangrowth/pathset"
	"github.com/stretchr/testify/require"
)

const scenario1 = `S	1	AAA
S	2	CC
S	3	GGGG
L	1	+	2	+	0M
L	2	+	3	+	0M
P	HG1#1#chr1	1+,2+,3+	*
P	HG2#1#chr1	1+,2+	*
P	HG3#1#chr1	2+,3+	*
`

func buildHistogram(t *testing.T) (histogram.Histogram, *abundance.Table) {
	t.Helper()
	g, _, err := gfa.Parse(strings.NewReader(scenario1))
	require.NoError(t, err)
	src := pathset.NewSource(g)
	r, _, err := group.NewResolver(group.ByPath, g.Paths.Names(), nil, nil, nil)
	require.NoError(t, err)
	tbl, err := abundance.Build(context.Background(), src, g.LinkGraph, r)
	require.NoError(t, err)
	return histogram.Build(tbl), tbl
}

// TestMassConservation grounds P1: every node/edge appears in exactly one
// coverage bucket, so the histogram's totals equal the table's totals.
func TestMassConservation(t *testing.T) {
	h, tbl := buildHistogram(t)

	count, bp := h.NodeMass()
	require.EqualValues(t, tbl.NumNodes, count)

	var totalBP int64
	for _, l := range tbl.NodeBP {
		totalBP += int64(l)
	}
	require.Equal(t, totalBP, bp)

	require.EqualValues(t, tbl.NumEdges, h.EdgeMass())
}

func TestScenario1Buckets(t *testing.T) {
	h, _ := buildHistogram(t)
	// node "2" (len 2) is in all 3 groups -> bucket 3.
	require.EqualValues(t, 1, h.NodeCount[3])
	require.EqualValues(t, 2, h.NodeBP[3])
	// nodes "1" (len 3) and "3" (len 4) are each in 2 groups -> bucket 2.
	require.EqualValues(t, 2, h.NodeCount[2])
	require.EqualValues(t, 7, h.NodeBP[2])
	require.EqualValues(t, 0, h.NodeCount[0])
	require.EqualValues(t, 0, h.NodeCount[1])
}
