package reportcfg_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/reportcfg"
	"github.com/stretchr/testify/require"
)

const doc = `
sections:
  - histogram
  - growth
group_mode: haplotype
thresholds:
  coverage_floor: 2
  quorum: 0.5
permute: true
`

func TestLoad(t *testing.T) {
	cfg, err := reportcfg.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "haplotype", cfg.GroupMode)
	require.True(t, cfg.Wants(reportcfg.SectionHistogram))
	require.True(t, cfg.Wants(reportcfg.SectionGrowth))
	require.False(t, cfg.Wants(reportcfg.SectionTable))
	require.Equal(t, 2, cfg.Thresholds.CoverageFloor)
	require.InDelta(t, 0.5, cfg.Thresholds.Quorum, 1e-9)
	require.True(t, cfg.Permute)
}
