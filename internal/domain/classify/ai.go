package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/courseloom/insight/internal/domain/model"
	"github.com/courseloom/insight/pkg/jsontext"
	"github.com/courseloom/insight/pkg/logger"
	"github.com/courseloom/insight/pkg/metrics"
)

// Defaults applied when the model omits a field. Category defaults handled
// separately via CategoryOther.
const (
	defaultAIConsistency   = 50
	defaultBasicPct        = 33
	defaultIntermediatePct = 34
)

// AIClassifier sends item titles to the model with a fixed taxonomy prompt
// and maps the response defensively. Any failure, including unparseable
// output, routes to the keyword fallback; no error escapes.
type AIClassifier struct {
	gen      Generator
	fallback *KeywordClassifier
	cfg      config
	log      logger.Logger
}

// NewAIClassifier creates the AI strategy with its built-in fallback.
func NewAIClassifier(gen Generator, opts ...Option) *AIClassifier {
	cfg := newConfig(opts...)
	return &AIClassifier{
		gen:      gen,
		fallback: NewKeywordClassifier(opts...),
		cfg:      cfg,
		log:      logger.Get().Named("classify"),
	}
}

// Classify runs the AI path and falls back deterministically on failure.
func (a *AIClassifier) Classify(ctx context.Context, items []model.ContentItem) Result {
	metrics.RecordAIRequest("classify")
	out, err := a.gen.Generate(ctx, a.prompt(items))
	if err != nil {
		a.log.Warn(ctx, "ai classification failed; using keyword fallback", logger.Error(err))
		metrics.RecordAIFallback("classify")
		return a.fallback.Classify(ctx, items)
	}
	res, err := a.parse(out)
	if err != nil {
		a.log.Warn(ctx, "ai classification unparseable; using keyword fallback", logger.Error(err))
		metrics.RecordAIFallback("classify")
		return a.fallback.Classify(ctx, items)
	}
	return res
}

func (a *AIClassifier) prompt(items []model.ContentItem) string {
	var sb strings.Builder
	sb.WriteString("You are classifying a video channel for a course-creation platform.\n")
	sb.WriteString("Pick exactly one category from this list:\n")
	sb.WriteString(strings.Join(Categories(), ", "))
	sb.WriteString("\n\nVideo titles:\n")
	limit := a.cfg.titleLimit
	for i, it := range items {
		if i == limit {
			break
		}
		sb.WriteString("- ")
		sb.WriteString(it.Title)
		sb.WriteString("\n")
	}
	sb.WriteString("\nRespond with only a JSON object:\n")
	sb.WriteString(`{"category":"...","consistency":0-100,"topics":["up to 5 short topics"],` +
		`"complexity":{"basic":0,"intermediate":0,"advanced":0}}`)
	return sb.String()
}

// aiPayload mirrors the JSON the prompt asks for. Pointer fields separate
// "absent" from zero so defaults apply per-field.
type aiPayload struct {
	Category    string   `json:"category"`
	Consistency *int     `json:"consistency"`
	Topics      []string `json:"topics"`
	Complexity  *struct {
		Basic        *int `json:"basic"`
		Intermediate *int `json:"intermediate"`
		Advanced     *int `json:"advanced"`
	} `json:"complexity"`
}

func (a *AIClassifier) parse(out string) (Result, error) {
	raw, ok := jsontext.ExtractObject(out)
	if !ok {
		return Result{}, fmt.Errorf("no JSON object in model output")
	}
	var p aiPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Result{}, fmt.Errorf("decode model output: %w", err)
	}

	res := Result{
		PrimaryCategory:    strings.TrimSpace(p.Category),
		ConsistencyPercent: defaultAIConsistency,
	}
	if !knownCategory(res.PrimaryCategory) {
		res.PrimaryCategory = CategoryOther
	}
	if p.Consistency != nil {
		res.ConsistencyPercent = clampPercent(*p.Consistency)
	}
	if res.ConsistencyPercent < a.cfg.floor {
		res.ConsistencyPercent = a.cfg.floor
	}
	if len(p.Topics) > MaxTopics {
		p.Topics = p.Topics[:MaxTopics]
	}
	res.Topics = p.Topics

	basic, intermediate := defaultBasicPct, defaultIntermediatePct
	if p.Complexity != nil {
		if p.Complexity.Basic != nil {
			basic = clampPercent(*p.Complexity.Basic)
		}
		if p.Complexity.Intermediate != nil {
			intermediate = clampPercent(*p.Complexity.Intermediate)
		}
	}
	if basic+intermediate > 100 {
		intermediate = 100 - basic
	}
	// Advanced takes the remainder so the split always sums to 100.
	res.Complexity = Distribution{
		Basic:        basic,
		Intermediate: intermediate,
		Advanced:     100 - basic - intermediate,
	}
	return res, nil
}
