// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/courseloom/insight/internal/adapters/catalog"
	"github.com/courseloom/insight/internal/domain/classify"
	"github.com/courseloom/insight/internal/domain/metric"
	"github.com/courseloom/insight/internal/domain/model"
	"github.com/courseloom/insight/internal/domain/narrative"
	"github.com/courseloom/insight/internal/domain/tool"
	"github.com/courseloom/insight/internal/domain/types"
	"github.com/courseloom/insight/pkg/logger"
	"github.com/courseloom/insight/pkg/metrics"
)

// Catalog is the acquisition dependency. Videos never fails: upstream
// trouble truncates the result instead.
type Catalog interface {
	ResolveChannel(ctx context.Context, ref string) (model.Channel, error)
	Videos(ctx context.Context, channelID string) []model.ContentItem
}

// Service runs the evaluation pipeline. It holds no per-request state;
// every evaluation is computed from the request alone.
type Service struct {
	catalog    Catalog
	classifier classify.Classifier
	narrator   narrative.Narrator

	now     func() time.Time
	started time.Time
	logger  logger.Logger

	mu          sync.Mutex
	evaluations map[string]int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the video catalog used by the authority tool.
func WithCatalog(c Catalog) Option {
	return func(s *Service) {
		s.catalog = c
	}
}

// WithClassifier sets the topic classifier.
func WithClassifier(c classify.Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithNarrator sets the narrative strategy.
func WithNarrator(n narrative.Narrator) Option {
	return func(s *Service) {
		if n != nil {
			s.narrator = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source. Longevity math depends on "now",
// so tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration. Without a
// catalog the authority tool reports not configured; without explicit
// strategies the deterministic classifier and template narrator are used.
func New(opts ...Option) *Service {
	s := &Service{
		classifier:  classify.New(nil),
		narrator:    narrative.New(nil),
		now:         time.Now,
		started:     time.Now(),
		evaluations: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// EvaluateTool runs one of the stateless assessment tools against the
// supplied numeric and string fields.
func (s *Service) EvaluateTool(ctx context.Context, name string, nums map[string]float64, strs map[string]string) (*types.Report, error) {
	t, ok := tool.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if err := t.Validate(nums); err != nil {
		return nil, err
	}

	m := t.Metrics(nums, strs)
	rep := s.report(ctx, t, m, strs, "")

	// Derived metrics only; echoing raw inputs back adds nothing.
	if t.Derive != nil {
		rep.DerivedMetrics = round2Map(t.Derive(nums, strs))
	}
	return rep, nil
}

// EvaluateAuthority runs the full acquisition, classification, and
// scoring pipeline for one channel reference.
func (s *Service) EvaluateAuthority(ctx context.Context, channelRef string) (*types.AuthorityReport, error) {
	if s.catalog == nil {
		return nil, ErrNotConfigured
	}

	ch, err := s.catalog.ResolveChannel(ctx, channelRef)
	if err != nil {
		// Upstream trouble during resolution leaves nothing to score,
		// which callers treat the same as an unknown channel.
		if !errors.Is(err, catalog.ErrChannelNotFound) {
			s.logger.Warn(ctx, "channel resolution failed",
				logger.String("ref", channelRef),
				logger.Error(err))
		}
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelRef)
	}

	items := s.catalog.Videos(ctx, ch.ID)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: channel %s", ErrNoContent, ch.ID)
	}

	cls := s.classifier.Classify(ctx, items)

	m := authorityMetrics(items, cls, s.now())

	strs := map[string]string{
		"primaryCategory": cls.PrimaryCategory,
		"channelTitle":    ch.Title,
	}
	rep := s.report(ctx, tool.Authority, m, strs, ch.Title)
	rep.DerivedMetrics = round2Map(map[string]float64{
		"avgDuration":    m["avgDuration"],
		"avgComments":    m["avgComments"],
		"avgViews":       m["avgViews"],
		"engagementRate": m["engagementRate"],
		"months":         m["months"],
	})

	return &types.AuthorityReport{
		Report: *rep,
		Channel: types.ChannelInfo{
			ID:          ch.ID,
			Title:       ch.Title,
			Subscribers: ch.Subscribers,
		},
		Classification: types.ClassificationInfo{
			PrimaryCategory:    cls.PrimaryCategory,
			ConsistencyPercent: cls.ConsistencyPercent,
			Topics:             cls.Topics,
			Complexity: map[string]int{
				"basic":        cls.Complexity.Basic,
				"intermediate": cls.Complexity.Intermediate,
				"advanced":     cls.Complexity.Advanced,
			},
		},
		ItemsAnalyzed: len(items),
	}, nil
}

// report evaluates the signal set, classifies the tier, and renders the
// narrative into a shaped Report.
func (s *Service) report(ctx context.Context, t tool.Tool, m map[string]float64, strs map[string]string, title string) *types.Report {
	res := t.Set.Evaluate(m)
	band := t.Tiers.Classify(res.Total)

	vars := formatVars(m, strs, res.Total)
	if title == "" {
		title = t.Title
	}
	n := s.narrator.Narrate(ctx, narrative.Subject{
		Tool:  t.Name,
		Title: title,
		Score: res.Total,
		Band:  band,
		Vars:  vars,
	})

	s.count(t.Name)
	metrics.RecordEvaluation(t.Name, band.Name, res.Total)
	s.logger.Info(ctx, "evaluation complete",
		logger.String("tool", t.Name),
		logger.Int("score", res.Total),
		logger.String("tier", band.Name))

	return &types.Report{
		Tool:            t.Name,
		TotalScore:      res.Total,
		Tier:            band.Name,
		TierLabel:       band.Label,
		ValueRange:      narrative.Interpolate(band.ValueRange, vars),
		Breakdown:       res.Breakdown,
		DerivedMetrics:  map[string]float64{},
		SummaryLines:    n.SummaryLines,
		Reassurance:     n.Reassurance,
		Recommendations: n.Recommendations,
	}
}

// authorityMetrics derives the metric map for the authority signal set
// from the acquired items and the classification.
func authorityMetrics(items []model.ContentItem, cls classify.Result, now time.Time) map[string]float64 {
	months := 0.0
	if oldest, ok := metric.OldestPublished(items); ok {
		months = metric.MonthsSince(oldest, now)
	}
	avgComments := metric.MeanComments(items)
	avgViews := metric.MeanViews(items)
	return map[string]float64{
		"consistencyPercent": float64(cls.ConsistencyPercent),
		"months":             months,
		"avgComments":        avgComments,
		"avgViews":           avgViews,
		"avgDuration":        metric.MeanDuration(items),
		"itemCount":          float64(len(items)),
		"engagementRate":     metric.Ratio(avgComments, avgViews) * 100,
	}
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	perTool := make(map[string]int64, len(s.evaluations))
	var total int64
	for k, v := range s.evaluations {
		perTool[k] = v
		total += v
	}
	s.mu.Unlock()

	return map[string]interface{}{
		"uptime_seconds":    int64(time.Since(s.started).Seconds()),
		"evaluations_total": total,
		"evaluations":       perTool,
		"catalog_enabled":   s.catalog != nil,
		"tools":             len(tool.All()),
	}
}

func (s *Service) count(toolName string) {
	s.mu.Lock()
	s.evaluations[toolName]++
	s.mu.Unlock()
}

// formatVars renders every metric and string field as an interpolation
// value. Numbers keep at most one decimal; whole values drop it.
func formatVars(m map[string]float64, strs map[string]string, score int) map[string]string {
	vars := make(map[string]string, len(m)+len(strs)+1)
	for k, v := range m {
		vars[k] = formatNumber(v)
	}
	for k, v := range strs {
		if v != "" {
			vars[k] = v
		}
	}
	vars["score"] = strconv.Itoa(score)
	return vars
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func round2Map(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = math.Round(v*100) / 100
	}
	return out
}
