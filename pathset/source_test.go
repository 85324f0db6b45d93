package pathset_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/core"
	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/pathset"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	step    core.Step
	edge    int32
	hasEdge bool
}

func record(t *testing.T, src *pathset.Source, pathID int32) []recorded {
	var out []recorded
	err := src.Walk(pathID, func(step core.Step, edge int32, hasEdge bool) error {
		out = append(out, recorded{step, edge, hasEdge})
		return nil
	})
	require.NoError(t, err)
	return out
}

// TestWalkPAndWEquivalent grounds scenario 6: the same graph encoded with
// P lines and with W lines must produce identical step/edge sequences.
func TestWalkPAndWEquivalent(t *testing.T) {
	pGraph := `S	1	AAA
S	2	CC
L	1	+	2	+	0M
P	p1	1+,2+	*
`
	wGraph := `S	1	AAA
S	2	CC
L	1	+	2	+	0M
W	p1	0	c	0	2	>1>2
`
	gp, _, err := gfa.Parse(strings.NewReader(pGraph))
	require.NoError(t, err)
	gw, _, err := gfa.Parse(strings.NewReader(wGraph))
	require.NoError(t, err)

	sp := record(t, pathset.NewSource(gp), 0)
	sw := record(t, pathset.NewSource(gw), 0)
	require.Equal(t, sp, sw)

	require.Len(t, sp, 2)
	require.False(t, sp[0].hasEdge)
	require.True(t, sp[1].hasEdge)
}

// TestWalkReversedOrientationSameEdge grounds P7: reversing a path's
// orientation leaves cov unchanged on edges (and nodes, trivially, since
// node features don't depend on orientation at all).
func TestWalkReversedOrientationSameEdge(t *testing.T) {
	text := `S	1	AAA
S	2	CC
L	1	+	2	+	0M
P	fwd	1+,2+	*
P	rev	2-,1-	*
`
	g, _, err := gfa.Parse(strings.NewReader(text))
	require.NoError(t, err)
	src := pathset.NewSource(g)

	fwd := record(t, src, 0)
	rev := record(t, src, 1)

	require.True(t, fwd[1].hasEdge)
	require.True(t, rev[1].hasEdge)
	require.Equal(t, fwd[1].edge, rev[1].edge, "same canonical edge regardless of traversal direction")
}

func TestWalkUnknownSegment(t *testing.T) {
	text := `S	1	AAA
P	p1	1+,9+	*
`
	g, _, err := gfa.Parse(strings.NewReader(text))
	require.NoError(t, err)
	src := pathset.NewSource(g)

	err = src.Walk(0, func(core.Step, int32, bool) error { return nil })
	require.ErrorIs(t, err, core.ErrUnknownSegment)
}
