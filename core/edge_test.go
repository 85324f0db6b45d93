package core_test

import (
	"testing"

	"github.com/katalvlaran/pangrowth/core"
	"github.com/stretchr/testify/require"
)

// TestEdgeCanonicalizationSymmetric is the unit-level grounding for
// scenario P7: traversing a link in either direction must resolve to the
// same canonical edge id.
func TestEdgeCanonicalizationSymmetric(t *testing.T) {
	ei := core.NewEdgeInterner()

	fwd := ei.Canonical(0, core.SideEnd, 1, core.SideStart)
	rev := ei.Canonical(1, core.SideStart, 0, core.SideEnd)
	require.Equal(t, fwd, rev)
	require.EqualValues(t, 1, ei.Len())
}

func TestEdgeCanonicalizationDistinctLinks(t *testing.T) {
	ei := core.NewEdgeInterner()

	e1 := ei.Canonical(0, core.SideEnd, 1, core.SideStart)
	e2 := ei.Canonical(1, core.SideEnd, 2, core.SideStart)
	require.NotEqual(t, e1, e2)
	require.EqualValues(t, 2, ei.Len())

	ep, ok := ei.Endpoints(e1)
	require.True(t, ok)
	require.EqualValues(t, 0, ep.SegA)
	require.EqualValues(t, 1, ep.SegB)
}

func TestLinkGraphBluntnessViolated(t *testing.T) {
	lg := core.NewLinkGraph()
	_, err := lg.AddSegment("1", 3)
	require.NoError(t, err)
	_, err = lg.AddSegment("2", 2)
	require.NoError(t, err)

	_, err = lg.AddLink("1", core.SideEnd, "2", core.SideStart, "5M")
	require.ErrorIs(t, err, core.ErrBluntnessViolated)

	id, err := lg.AddLink("1", core.SideEnd, "2", core.SideStart, "0M")
	require.NoError(t, err)
	require.EqualValues(t, 1, lg.LinkCount())

	id2, err := lg.AddLink("2", core.SideStart, "1", core.SideEnd, "*")
	require.NoError(t, err)
	require.Equal(t, id, id2, "reversed link direction resolves to the same canonical id")
}

func TestLinkGraphAddLinkUnknownSegment(t *testing.T) {
	lg := core.NewLinkGraph()
	_, err := lg.AddSegment("1", 3)
	require.NoError(t, err)

	_, err = lg.AddLink("1", core.SideEnd, "ghost", core.SideStart, "0M")
	require.ErrorIs(t, err, core.ErrUnknownSegment)
}
