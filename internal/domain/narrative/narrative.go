// Package narrative turns a scored, tiered result into natural-language
// explanation text. Two strategies implement the same contract: an
// AI-backed narrator that only changes the prose, and a template narrator
// that is always available. The output schema is identical on both paths.
package narrative

import (
	"context"
	"strings"

	"github.com/courseloom/insight/internal/domain/tier"
)

// Narrative is the explanation attached to a score result. Purely
// derivative, never persisted.
type Narrative struct {
	SummaryLines    []string
	Reassurance     string
	Recommendations []string
}

// Subject is everything a narrator may draw on.
type Subject struct {
	Tool  string
	Title string // display title, e.g. "Channel Content Authority"
	Score int
	Band  tier.Band

	// Vars are the interpolation values: derived metrics and
	// classification fields, already formatted as strings.
	Vars map[string]string
}

// Narrator produces a narrative. Implementations never fail: the AI
// strategy falls back to templates on any error.
type Narrator interface {
	Narrate(ctx context.Context, sub Subject) Narrative
}

// Generator abstracts the text-generation dependency of the AI strategy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New selects the strategy by configuration presence.
func New(gen Generator) Narrator {
	if gen == nil {
		return NewTemplateNarrator()
	}
	return NewAINarrator(gen)
}

// Interpolate replaces {name} placeholders with values from vars. Unknown
// placeholders are left intact so a missing value is visible, not silent.
func Interpolate(text string, vars map[string]string) string {
	var sb strings.Builder
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		closing := strings.IndexByte(text[open:], '}')
		if closing < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		closing += open
		sb.WriteString(text[:open])
		key := text[open+1 : closing]
		if val, ok := vars[key]; ok {
			sb.WriteString(val)
		} else {
			sb.WriteString(text[open : closing+1])
		}
		text = text[closing+1:]
	}
}
