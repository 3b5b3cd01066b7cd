package telemetry_test

import (
	"testing"

	"github.com/frontiergo/frontier/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func TestRecorder_TracksWidestLevel(t *testing.T) {
	rec, reg := telemetry.NewRecorder()
	rec.Observe(0, 1)
	rec.Observe(1, 5)
	rec.Observe(2, 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, fam := range families {
		if fam.GetName() != "frontier_widest_level_nodes" {
			continue
		}
		found = true
		require.Len(t, fam.Metric, 1)
		require.Equal(t, 5.0, fam.Metric[0].GetGauge().GetValue())
	}
	require.True(t, found, "expected frontier_widest_level_nodes in the gathered families")
}

func TestHandler_ServesMetrics(t *testing.T) {
	_, reg := telemetry.NewRecorder()
	h := telemetry.Handler(reg)
	require.NotNil(t, h)
}
