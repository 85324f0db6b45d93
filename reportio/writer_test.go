package reportio_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/panacus"
	"github.com/katalvlaran/pangrowth/reportio"
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

func buildResult(t *testing.T) *panacus.Result {
	t.Helper()
	g, _, err := gfa.Parse(strings.NewReader(scenario1))
	require.NoError(t, err)
	res, _, err := panacus.Run(context.Background(), g, panacus.NewRequest(
		panacus.WithThreshold(1, 0.5),
		panacus.WithPermutation([]int32{0, 1, 2}),
	))
	require.NoError(t, err)
	return res
}

func TestWriteHistogram(t *testing.T) {
	res := buildResult(t)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteHistogram(&buf, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, int(res.Histogram.NumGroups)+2) // header + k=0..N
}

func TestWriteGrowth(t *testing.T) {
	res := buildResult(t)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteGrowth(&buf, res))
	require.Contains(t, buf.String(), "node.growth.core")
	require.Contains(t, buf.String(), "node.growth.ordered")
	require.Contains(t, buf.String(), "node.ordered.growth.core0", "permutation+threshold together must render the ordered threshold columns")
}

func TestWriteGrowthBP(t *testing.T) {
	g, _, err := gfa.Parse(strings.NewReader(scenario1))
	require.NoError(t, err)
	res, _, err := panacus.Run(context.Background(), g, panacus.NewRequest(
		panacus.WithFeatures(panacus.Nodes|panacus.BP),
		panacus.WithThreshold(1, 0.5),
	))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, reportio.WriteGrowth(&buf, res))
	require.Contains(t, buf.String(), "node.growth.bp")
	require.Contains(t, buf.String(), "node.bp.growth.core0")
}

func TestWriteTable(t *testing.T) {
	res := buildResult(t)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteTable(&buf, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, int(res.Table.NumGroups)+1)
}
