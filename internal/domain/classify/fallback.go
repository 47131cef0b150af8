package classify

import (
	"context"
	"strings"

	"github.com/courseloom/insight/internal/domain/model"
)

// Fallback complexity split: without the AI path there is no per-item
// difficulty signal, so the distribution is a fixed constant. This is an
// accepted precision loss.
var fallbackComplexity = Distribution{Basic: 40, Intermediate: 40, Advanced: 20}

// KeywordClassifier is the deterministic strategy: it counts taxonomy
// keyword hits over lower-cased title+description text.
type KeywordClassifier struct {
	cfg config
}

// NewKeywordClassifier creates the deterministic keyword classifier.
func NewKeywordClassifier(opts ...Option) *KeywordClassifier {
	return &KeywordClassifier{cfg: newConfig(opts...)}
}

// Classify accumulates a per-category keyword-hit score and an items-matched
// count. The primary category is the highest scoring one, ties broken by
// taxonomy order. Consistency is the share of items matching the primary
// category, floored at the configured minimum.
func (k *KeywordClassifier) Classify(_ context.Context, items []model.ContentItem) Result {
	scores := make([]int, len(taxonomy))
	matched := make([]int, len(taxonomy))
	hitKeywords := make([]map[string]bool, len(taxonomy))

	for _, it := range items {
		text := strings.ToLower(it.Title + " " + it.Description)
		for ci, cat := range taxonomy {
			hits := 0
			for _, kw := range cat.keywords {
				n := strings.Count(text, kw)
				if n > 0 {
					hits += n
					if hitKeywords[ci] == nil {
						hitKeywords[ci] = make(map[string]bool)
					}
					hitKeywords[ci][kw] = true
				}
			}
			if hits > 0 {
				scores[ci] += hits
				matched[ci]++
			}
		}
	}

	best := -1
	for ci := range taxonomy {
		if scores[ci] > 0 && (best < 0 || scores[ci] > scores[best]) {
			best = ci
		}
	}

	if best < 0 {
		return Result{
			PrimaryCategory:    CategoryOther,
			ConsistencyPercent: k.cfg.floor,
			Topics:             nil,
			Complexity:         fallbackComplexity,
		}
	}

	consistency := 0
	if len(items) > 0 {
		consistency = matched[best] * 100 / len(items)
	}
	if consistency < k.cfg.floor {
		consistency = k.cfg.floor
	}

	// Topics: the primary category's keywords that actually hit, in
	// table order, capped at MaxTopics.
	var topics []string
	for _, kw := range taxonomy[best].keywords {
		if hitKeywords[best][kw] {
			topics = append(topics, kw)
			if len(topics) == MaxTopics {
				break
			}
		}
	}

	return Result{
		PrimaryCategory:    taxonomy[best].name,
		ConsistencyPercent: consistency,
		Topics:             topics,
		Complexity:         fallbackComplexity,
	}
}
