// Package tier maps total scores onto ordered qualitative bands and carries
// the template prose each band ships with.
package tier

import (
	"errors"
	"fmt"

	"github.com/courseloom/insight/internal/domain/signal"
)

// Band is one qualitative tier. Min is the inclusive lower score bound;
// bands are ordered by descending Min and the last band must start at 0 so
// the scale partitions [0,100] with no gaps.
type Band struct {
	Min   int
	Name  string // stable machine name, e.g. "authority"
	Label string // display label, e.g. "Channel Authority"

	// ValueRange is the recommended price/value range for this band.
	ValueRange string

	// Lines are templated explanation strings; {placeholders} are
	// interpolated with derived metrics and classification fields.
	Lines []string

	// Reassurance is the templated single-line encouragement.
	Reassurance string

	// Recommendations are templated next-step strings.
	Recommendations []string
}

// Scale is an ordered, exhaustive set of bands.
type Scale []Band

// Sentinel errors for scale validation.
var (
	ErrEmptyScale    = errors.New("tier scale is empty")
	ErrUnorderedMins = errors.New("tier bands must have strictly descending mins")
	ErrOpenFloor     = errors.New("lowest tier band must start at 0")
)

// Classify returns the band the score falls into. Scores above the top
// band's range still classify into the top band; a valid scale always
// matches because its floor is 0.
func (s Scale) Classify(score int) Band {
	for _, b := range s {
		if score >= b.Min {
			return b
		}
	}
	// Unreachable on a validated scale; return the floor band defensively.
	return s[len(s)-1]
}

// Validate checks that the scale partitions [0,100]: non-empty, strictly
// descending mins, floor at 0.
func (s Scale) Validate() error {
	if len(s) == 0 {
		return ErrEmptyScale
	}
	for i := 1; i < len(s); i++ {
		if s[i].Min >= s[i-1].Min {
			return fmt.Errorf("%w: band %q (min %d) follows %q (min %d)",
				ErrUnorderedMins, s[i].Name, s[i].Min, s[i-1].Name, s[i-1].Min)
		}
	}
	if s[len(s)-1].Min != 0 {
		return fmt.Errorf("%w: got %d", ErrOpenFloor, s[len(s)-1].Min)
	}
	if top := s[0].Min; top > signal.MaxTotal {
		return fmt.Errorf("top band min %d exceeds scale ceiling %d", top, signal.MaxTotal)
	}
	return nil
}
