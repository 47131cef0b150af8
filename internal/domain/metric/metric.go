// Package metric normalizes raw catalog encodings into plain numeric units
// and derives the per-request aggregates the signal scorer consumes.
package metric

import (
	"regexp"
	"time"

	"github.com/courseloom/insight/internal/domain/model"
)

// Duration token fields, matched independently so any subset may be present.
var (
	hoursRe   = regexp.MustCompile(`(\d+)H`)
	minutesRe = regexp.MustCompile(`(\d+)M`)
	secondsRe = regexp.MustCompile(`(\d+)S`)
)

const (
	minutesPerHour   = 60
	secondsPerMinute = 60
	daysPerMonth     = 30.44 // mean Gregorian month
	hoursPerDay      = 24
)

// DurationMinutes converts a compact duration token such as "PT1H23M45S"
// into total minutes. Missing fields count as zero; a token with no
// recognizable fields yields zero rather than an error, so one malformed
// item never aborts a batch.
func DurationMinutes(token string) float64 {
	total := 0.0
	if m := hoursRe.FindStringSubmatch(token); m != nil {
		total += float64(atoi(m[1])) * minutesPerHour
	}
	if m := minutesRe.FindStringSubmatch(token); m != nil {
		total += float64(atoi(m[1]))
	}
	if m := secondsRe.FindStringSubmatch(token); m != nil {
		total += float64(atoi(m[1])) / secondsPerMinute
	}
	return total
}

func atoi(s string) int64 {
	var n int64
	for _, c := range s {
		n = n*10 + int64(c-'0')
	}
	return n
}

// MeanDuration returns the average item duration in minutes, 0 for no items.
func MeanDuration(items []model.ContentItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		sum += it.DurationMinutes
	}
	return sum / float64(len(items))
}

// MeanComments returns the average comment count per item, 0 for no items.
func MeanComments(items []model.ContentItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum int64
	for _, it := range items {
		sum += it.CommentCount
	}
	return float64(sum) / float64(len(items))
}

// MeanViews returns the average view count per item, 0 for no items.
func MeanViews(items []model.ContentItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum int64
	for _, it := range items {
		sum += it.ViewCount
	}
	return float64(sum) / float64(len(items))
}

// OldestPublished returns the earliest publish time in the set.
// The second return is false when the set is empty or carries no timestamps.
func OldestPublished(items []model.ContentItem) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, it := range items {
		if it.PublishedAt.IsZero() {
			continue
		}
		if !found || it.PublishedAt.Before(oldest) {
			oldest = it.PublishedAt
			found = true
		}
	}
	return oldest, found
}

// MonthsSince converts the span between t and now into fractional months.
// Returns 0 when t is zero or in the future.
func MonthsSince(t, now time.Time) float64 {
	if t.IsZero() || !t.Before(now) {
		return 0
	}
	days := now.Sub(t).Hours() / hoursPerDay
	return days / daysPerMonth
}

// Ratio divides num by den, returning 0 when den is zero so engagement
// ratios never produce NaN or Inf.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
