package telemetry

import (
	"bytes"
	"testing"

	"github.com/LinusU/go-xorshift128plus/config"
	"github.com/stretchr/testify/require"
)

// TestSampler_Empty verifies that an unobserved sampler reports zeros.
func TestSampler_Empty(t *testing.T) {
	require.Equal(t, Snapshot{}, NewSampler().Snapshot())
}

// TestSampler_Observe verifies count, mean and extremes.
func TestSampler_Observe(t *testing.T) {
	s := NewSampler()
	for _, v := range []float64{0.25, 0.75, 0.5} {
		s.Observe(v)
	}

	snap := s.Snapshot()
	require.Equal(t, 3, snap.Count)
	require.InDelta(t, 0.5, snap.Mean, 1e-12)
	require.Equal(t, 0.25, snap.Min)
	require.Equal(t, 0.75, snap.Max)
}

// TestSnapshot_Log verifies that the summary is emitted at debug level.
func TestSnapshot_Log(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogsCfg{Level: "debug", Format: config.LogsFormatJSON}, &buf)
	require.NoError(t, err)

	s := NewSampler()
	s.Observe(0.5)
	s.Snapshot().Log(logger)

	require.Contains(t, buf.String(), `"count":1`)
	require.Contains(t, buf.String(), "sequence summary")
}
