package narrative

import "context"

// TemplateNarrator is the deterministic strategy: it interpolates the tier
// band's template strings with the subject's variables.
type TemplateNarrator struct{}

// NewTemplateNarrator creates the deterministic narrator.
func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

// Narrate renders the band templates. A band with no lines still yields a
// fully-shaped narrative with empty slices rather than nils collapsing to
// JSON null.
func (t *TemplateNarrator) Narrate(_ context.Context, sub Subject) Narrative {
	lines := make([]string, 0, len(sub.Band.Lines))
	for _, l := range sub.Band.Lines {
		lines = append(lines, Interpolate(l, sub.Vars))
	}
	recs := make([]string, 0, len(sub.Band.Recommendations))
	for _, r := range sub.Band.Recommendations {
		recs = append(recs, Interpolate(r, sub.Vars))
	}
	return Narrative{
		SummaryLines:    lines,
		Reassurance:     Interpolate(sub.Band.Reassurance, sub.Vars),
		Recommendations: recs,
	}
}
