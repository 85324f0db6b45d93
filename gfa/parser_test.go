package gfa_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/core"
	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/stretchr/testify/require"
)

// scenario1Graph is the spec's end-to-end example 1: two segments, one
// link, three paths (p3 visits only segment 1).
const scenario1Graph = `S	1	AAA
S	2	CC
L	1	+	2	+	0M
P	p1	1+,2+	*
P	p2	1+,2+	*
P	p3	1+	*
`

func TestParseScenario1(t *testing.T) {
	g, warnings, err := gfa.Parse(strings.NewReader(scenario1Graph))
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.EqualValues(t, 2, g.Segments.Len())
	require.EqualValues(t, 3, g.Paths.Len())
	require.EqualValues(t, 3, g.Segments.Length(0))
	require.EqualValues(t, 2, g.Segments.Length(1))
	require.EqualValues(t, 1, g.LinkCount())

	require.Len(t, g.PathRecords, 3)
	require.Equal(t, "1+,2+", g.PathRecords[0].Steps)
	require.Equal(t, gfa.PLineEncoding, g.PathRecords[0].Encoding)
}

func TestParseWalkEquivalentToPath(t *testing.T) {
	walkGraph := `S	1	AAA
S	2	CC
L	1	+	2	+	0M
W	p1	0	c	0	2	>1>2
W	p2	0	c	0	2	>1>2
`
	g, warnings, err := gfa.Parse(strings.NewReader(walkGraph))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.EqualValues(t, 2, g.Paths.Len())
	require.Equal(t, gfa.WLineEncoding, g.PathRecords[0].Encoding)
	require.Equal(t, ">1>2", g.PathRecords[0].Steps)
	require.Equal(t, "p1#0#c", g.Paths.Name(0))
}

func TestParseBluntnessViolated(t *testing.T) {
	bad := `S	1	AAA
S	2	CC
L	1	+	2	+	3M
`
	_, _, err := gfa.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, core.ErrBluntnessViolated)
}

func TestParseUnknownSegmentInLink(t *testing.T) {
	bad := `S	1	AAA
L	1	+	2	+	0M
`
	_, _, err := gfa.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, core.ErrUnknownSegment)
}

func TestParseSegmentMissingLength(t *testing.T) {
	bad := `S	1	*
`
	_, _, err := gfa.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, gfa.ErrMalformedInput)
}

func TestParseSegmentLengthFromTag(t *testing.T) {
	ok := `S	1	*	LN:i:42
`
	g, _, err := gfa.Parse(strings.NewReader(ok))
	require.NoError(t, err)
	require.EqualValues(t, 42, g.Segments.Length(0))
}

func TestParseDuplicatePathWarns(t *testing.T) {
	dup := `S	1	AAA
P	p1	1+	*
P	p1	1+	*
`
	g, warnings, err := gfa.Parse(strings.NewReader(dup))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.EqualValues(t, 1, g.Paths.Len())
}
