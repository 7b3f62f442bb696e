package simulation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the population for overlays and logs.
type Stats struct {
	Ticks         uint64
	Count         int
	MeanSpeed     float64
	SpeedStdDev   float64
	MaxSpeed      float64
	KineticEnergy float64 // Σ ½·m·|v|²
}

// ComputeStats calculates population statistics for the given circles.
func ComputeStats(ticks uint64, circles []*Circle) Stats {
	st := Stats{Ticks: ticks, Count: len(circles)}
	if len(circles) == 0 {
		return st
	}

	speeds := make([]float64, len(circles))
	energies := make([]float64, len(circles))
	for i, c := range circles {
		speeds[i] = c.velocity.Magnitude()
		energies[i] = 0.5 * c.Mass() * c.velocity.NormSq()
	}

	st.MeanSpeed = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		st.SpeedStdDev = stat.StdDev(speeds, nil)
	}
	st.MaxSpeed = floats.Max(speeds)
	st.KineticEnergy = floats.Sum(energies)
	return st
}

func (s Stats) String() string {
	return fmt.Sprintf("Ticks: %d, Circles: %d\nSpeed: mean %.2f, std %.2f, max %.2f\nKinetic energy: %.3e",
		s.Ticks, s.Count, s.MeanSpeed, s.SpeedStdDev, s.MaxSpeed, s.KineticEnergy)
}
