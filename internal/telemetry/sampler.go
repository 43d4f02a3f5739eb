package telemetry

import (
	"math"

	"github.com/rs/zerolog"
)

// Sampler accumulates summary statistics over a drawn sequence.
// It is as single-owner as the generator it observes.
type Sampler struct {
	n   int
	sum float64
	min float64
	max float64
}

func NewSampler() *Sampler {
	return &Sampler{min: math.Inf(1), max: math.Inf(-1)}
}

func (s *Sampler) Observe(v float64) {
	s.n++
	s.sum += v
	if v < s.min {
		s.min = v
	}
	if v > s.max {
		s.max = v
	}
}

// Snapshot holds summary statistics at a point in time.
type Snapshot struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

func (s *Sampler) Snapshot() Snapshot {
	if s.n == 0 {
		return Snapshot{}
	}
	return Snapshot{
		Count: s.n,
		Mean:  s.sum / float64(s.n),
		Min:   s.min,
		Max:   s.max,
	}
}

// Log writes the snapshot as a single debug event.
func (s Snapshot) Log(logger zerolog.Logger) {
	logger.Debug().
		Int("count", s.Count).
		Float64("mean", s.Mean).
		Float64("min", s.Min).
		Float64("max", s.Max).
		Msg("sequence summary")
}
