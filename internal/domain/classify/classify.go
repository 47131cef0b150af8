// Package classify produces a topic classification for a set of content
// items. Two strategies implement the same contract: an AI-backed
// classifier preferred when a generator is configured, and a keyword
// matcher that is always available and fully sufficient for correctness.
package classify

import (
	"context"

	"github.com/courseloom/insight/internal/domain/model"
)

// Classification defaults and bounds.
const (
	// DefaultConsistencyFloor keeps the consistency signal from reading
	// as near-zero regardless of computation path.
	DefaultConsistencyFloor = 30

	// MaxTopics caps the topic list length.
	MaxTopics = 5

	// DefaultTitleLimit caps how many item titles the AI path sends.
	DefaultTitleLimit = 100
)

// Distribution is the basic/intermediate/advanced split in percent.
// A well-formed distribution sums to exactly 100.
type Distribution struct {
	Basic        int
	Intermediate int
	Advanced     int
}

// Result is the classification produced for one item set.
type Result struct {
	PrimaryCategory    string
	ConsistencyPercent int
	Topics             []string
	Complexity         Distribution
}

// Classifier classifies an item set. Implementations never fail: the AI
// strategy routes every parse or network failure to the keyword fallback.
type Classifier interface {
	Classify(ctx context.Context, items []model.ContentItem) Result
}

// Generator abstracts the text-generation dependency of the AI strategy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New selects the strategy by configuration presence: with a generator the
// AI classifier (with built-in fallback) is used, without one the keyword
// matcher alone.
func New(gen Generator, opts ...Option) Classifier {
	if gen == nil {
		return NewKeywordClassifier(opts...)
	}
	return NewAIClassifier(gen, opts...)
}

// config holds settings shared by both strategies.
type config struct {
	floor      int
	titleLimit int
}

// Option applies a configuration option to a classifier.
type Option func(*config)

// WithConsistencyFloor overrides the minimum consistency percentage.
func WithConsistencyFloor(floor int) Option {
	return func(c *config) {
		if floor >= 0 && floor <= 100 {
			c.floor = floor
		}
	}
}

// WithTitleLimit overrides how many titles the AI path includes.
func WithTitleLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.titleLimit = n
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{
		floor:      DefaultConsistencyFloor,
		titleLimit: DefaultTitleLimit,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
