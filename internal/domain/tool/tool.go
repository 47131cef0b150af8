// Package tool declares the eight assessment tools as data: each one is a
// signal set, a tier scale, an input spec, and a derived-metric step. The
// band thresholds and slopes encode calibrated product judgment and are
// deliberately kept as opaque configuration.
package tool

import (
	"errors"
	"fmt"

	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Input describes one numeric request field.
type Input struct {
	Name     string
	Required bool
	Min      float64
}

// Tool is one assessment variant.
type Tool struct {
	Name  string
	Title string

	// Inputs are the numeric request fields; StringInputs the optional
	// free-text ones (e.g. niche).
	Inputs       []Input
	StringInputs []string

	Set   signal.Set
	Tiers tier.Scale

	// Derive extends the raw inputs with computed metrics. Nil means the
	// inputs feed the signals directly.
	Derive func(nums map[string]float64, strs map[string]string) map[string]float64
}

// band keeps the signal tables compact.
func band(threshold, points float64) signal.Band {
	return signal.Band{Threshold: threshold, Points: points}
}

// Sentinel error kinds for input validation.
var (
	ErrMissingInput = errors.New("missing required field")
	ErrInvalidInput = errors.New("invalid field value")
)

// Validate checks the supplied numeric fields against the input spec.
// It runs before any external call is made.
func (t Tool) Validate(nums map[string]float64) error {
	for _, in := range t.Inputs {
		v, ok := nums[in.Name]
		if !ok {
			if in.Required {
				return fmt.Errorf("%w: %s", ErrMissingInput, in.Name)
			}
			continue
		}
		if v < in.Min {
			return fmt.Errorf("%w: %s must be >= %g", ErrInvalidInput, in.Name, in.Min)
		}
	}
	return nil
}

// Metrics builds the metric map the signal set reads: the raw inputs plus
// anything Derive adds.
func (t Tool) Metrics(nums map[string]float64, strs map[string]string) map[string]float64 {
	out := make(map[string]float64, len(nums)+4)
	for k, v := range nums {
		out[k] = v
	}
	if t.Derive != nil {
		for k, v := range t.Derive(nums, strs) {
			out[k] = v
		}
	}
	return out
}

// registry holds every tool in declaration order.
var registry = []Tool{
	Authority,
	Monetization,
	Pricing,
	Cohort,
	Income,
	Workshop,
	Migration,
	Toolstack,
}

// All returns the registered tools in order.
func All() []Tool {
	out := make([]Tool, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a tool by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
