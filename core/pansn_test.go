package core_test

import (
	"testing"

	"github.com/katalvlaran/pangrowth/core"
	"github.com/stretchr/testify/require"
)

func TestParsePanSN(t *testing.T) {
	cases := []struct {
		name string
		want core.PanSN
	}{
		{"HG002#1#chr1", core.PanSN{Sample: "HG002", Haplotype: "HG002#1", Contig: "HG002#1#chr1"}},
		{"HG002#2#chr1", core.PanSN{Sample: "HG002", Haplotype: "HG002#2", Contig: "HG002#2#chr1"}},
		{"ref", core.PanSN{Sample: "ref", Haplotype: "ref", Contig: "ref"}},
		{"sampleOnly#hapOnly", core.PanSN{Sample: "sampleOnly", Haplotype: "sampleOnly#hapOnly", Contig: "sampleOnly#hapOnly"}},
	}
	for _, c := range cases {
		got := core.ParsePanSN(c.name)
		require.Equal(t, c.want, got, "name=%q", c.name)
	}
}

func TestPathInternerDuplicate(t *testing.T) {
	pi := core.NewPathInterner()
	id1, err := pi.Intern("p1")
	require.NoError(t, err)

	id2, err := pi.Intern("p1")
	require.ErrorIs(t, err, core.ErrDuplicatePath)
	require.Equal(t, id1, id2, "duplicate Intern still reports the original id")

	require.Equal(t, "p1", pi.Name(id1))
}
