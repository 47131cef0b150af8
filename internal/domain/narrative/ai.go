package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/courseloom/insight/pkg/jsontext"
	"github.com/courseloom/insight/pkg/logger"
	"github.com/courseloom/insight/pkg/metrics"
)

const maxSummaryLines = 4

// AINarrator enriches the narrative with model-written prose. The computed
// signals are the prompt context; the template narrator backs every field,
// so the AI path changes wording, never shape.
type AINarrator struct {
	gen      Generator
	fallback *TemplateNarrator
	log      logger.Logger
}

// NewAINarrator creates the AI strategy with its built-in fallback.
func NewAINarrator(gen Generator) *AINarrator {
	return &AINarrator{
		gen:      gen,
		fallback: NewTemplateNarrator(),
		log:      logger.Get().Named("narrative"),
	}
}

// Narrate runs the AI path and falls back to templates on any failure.
func (a *AINarrator) Narrate(ctx context.Context, sub Subject) Narrative {
	metrics.RecordAIRequest("narrate")
	out, err := a.gen.Generate(ctx, a.prompt(sub))
	if err != nil {
		a.log.Warn(ctx, "ai narration failed; using templates", logger.Error(err))
		metrics.RecordAIFallback("narrate")
		return a.fallback.Narrate(ctx, sub)
	}
	n, err := a.parse(out)
	if err != nil {
		a.log.Warn(ctx, "ai narration unparseable; using templates", logger.Error(err))
		metrics.RecordAIFallback("narrate")
		return a.fallback.Narrate(ctx, sub)
	}
	// Missing fields keep the template rendering so the shape never
	// degrades under partial model output.
	tpl := a.fallback.Narrate(ctx, sub)
	if len(n.SummaryLines) == 0 {
		n.SummaryLines = tpl.SummaryLines
	}
	if n.Reassurance == "" {
		n.Reassurance = tpl.Reassurance
	}
	if len(n.Recommendations) == 0 {
		n.Recommendations = tpl.Recommendations
	}
	return n
}

func (a *AINarrator) prompt(sub Subject) string {
	keys := make([]string, 0, len(sub.Vars))
	for k := range sub.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "A creator used the %q assessment and scored %d/100 (%s).\n",
		sub.Title, sub.Score, sub.Band.Label)
	sb.WriteString("Computed signals:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %s\n", k, sub.Vars[k])
	}
	sb.WriteString("\nWrite an encouraging, specific assessment. Respond with only a JSON object:\n")
	sb.WriteString(`{"summary":["2-4 short lines"],"reassurance":"one line",` +
		`"recommendations":["3 concrete next steps"]}`)
	return sb.String()
}

type aiPayload struct {
	Summary         []string `json:"summary"`
	Reassurance     string   `json:"reassurance"`
	Recommendations []string `json:"recommendations"`
}

func (a *AINarrator) parse(out string) (Narrative, error) {
	raw, ok := jsontext.ExtractObject(out)
	if !ok {
		return Narrative{}, fmt.Errorf("no JSON object in model output")
	}
	var p aiPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Narrative{}, fmt.Errorf("decode model output: %w", err)
	}
	if len(p.Summary) > maxSummaryLines {
		p.Summary = p.Summary[:maxSummaryLines]
	}
	return Narrative{
		SummaryLines:    p.Summary,
		Reassurance:     strings.TrimSpace(p.Reassurance),
		Recommendations: p.Recommendations,
	}, nil
}
