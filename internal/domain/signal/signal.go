// Package signal defines the contract for computing bounded scores from
// named raw metrics. Each signal is data: a descending ladder of plateau
// bands plus a linear slope below the lowest band. The band boundaries
// encode calibrated product judgment and are kept as opaque configuration.
package signal

import "math"

// Scale bounds for a full signal set.
const (
	// MaxTotal is the score ceiling every set sums to.
	MaxTotal = 100
)

// Band maps a threshold to a fixed point plateau. Raw metrics at or above
// Threshold earn Points, subject to earlier (higher) bands winning first.
type Band struct {
	Threshold float64
	Points    float64
}

// Signal is one independently scored input dimension.
type Signal struct {
	// Name keys the breakdown entry for this signal.
	Name string

	// Metric names the raw metric this signal reads.
	Metric string

	// MaxPoints bounds the contribution of this signal.
	MaxPoints float64

	// Bands is ordered by descending Threshold. The first band whose
	// threshold the raw metric reaches decides the points.
	Bands []Band

	// Slope scales the raw metric linearly below the lowest band.
	Slope float64
}

// Score applies the tiered mapping: plateau buckets above the lowest
// threshold, linear scaling below it, never negative, never above
// MaxPoints.
func (s Signal) Score(raw float64) float64 {
	for _, b := range s.Bands {
		if raw >= b.Threshold {
			return clamp(b.Points, 0, s.MaxPoints)
		}
	}
	return clamp(raw*s.Slope, 0, s.MaxPoints)
}

// Set is a named, ordered collection of signals whose MaxPoints sum to
// exactly MaxTotal.
type Set struct {
	Name    string
	Signals []Signal
}

// MaxPointsTotal sums the per-signal ceilings; a well-formed set returns
// exactly MaxTotal.
func (s Set) MaxPointsTotal() float64 {
	total := 0.0
	for _, sig := range s.Signals {
		total += sig.MaxPoints
	}
	return total
}

// Result carries the total score and the per-signal breakdown.
type Result struct {
	Total     int
	Breakdown map[string]int
}

// Evaluate scores every signal against the metrics map. Missing metrics
// read as zero. The total is the sum of per-signal rounded points,
// clamped to [0, MaxTotal].
func (s Set) Evaluate(metrics map[string]float64) Result {
	breakdown := make(map[string]int, len(s.Signals))
	sum := 0
	for _, sig := range s.Signals {
		points := int(math.Round(sig.Score(metrics[sig.Metric])))
		breakdown[sig.Name] = points
		sum += points
	}
	if sum > MaxTotal {
		sum = MaxTotal
	}
	if sum < 0 {
		sum = 0
	}
	return Result{Total: sum, Breakdown: breakdown}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
