package narrative_test

import (
	"context"
	"errors"
	"testing"

	narrative "github.com/courseloom/insight/internal/domain/narrative"
	"github.com/courseloom/insight/internal/domain/tier"
	"github.com/courseloom/insight/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

type stubGenerator struct {
	out string
	err error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func subject() narrative.Subject {
	return narrative.Subject{
		Tool:  "authority",
		Title: "Channel Content Authority",
		Score: 71,
		Band: tier.Band{
			Min:             65,
			Name:            "established",
			Label:           "Established",
			Lines:           []string{"Your {primaryCategory} channel scores {score}/100.", "Average video runs {avgDuration} minutes."},
			Reassurance:     "You are well past the hardest part.",
			Recommendations: []string{"Package your {primaryCategory} expertise into a course."},
		},
		Vars: map[string]string{
			"primaryCategory": "Design",
			"score":           "71",
			"avgDuration":     "14.2",
		},
	}
}

func TestInterpolate(t *testing.T) {
	Convey("Given template strings", t, func() {
		vars := map[string]string{"niche": "Design", "score": "82"}

		So(narrative.Interpolate("Your {niche} score is {score}.", vars), ShouldEqual, "Your Design score is 82.")

		Convey("Unknown placeholders stay visible", func() {
			So(narrative.Interpolate("{missing} stays", vars), ShouldEqual, "{missing} stays")
		})

		Convey("Text without placeholders passes through", func() {
			So(narrative.Interpolate("plain text", vars), ShouldEqual, "plain text")
		})

		Convey("An unclosed brace does not loop or panic", func() {
			So(narrative.Interpolate("broken {brace", vars), ShouldEqual, "broken {brace")
		})
	})
}

func TestTemplateNarrator(t *testing.T) {
	Convey("Given the template narrator", t, func() {
		n := narrative.NewTemplateNarrator().Narrate(context.Background(), subject())

		So(n.SummaryLines, ShouldResemble, []string{
			"Your Design channel scores 71/100.",
			"Average video runs 14.2 minutes.",
		})
		So(n.Reassurance, ShouldEqual, "You are well past the hardest part.")
		So(n.Recommendations, ShouldResemble, []string{"Package your Design expertise into a course."})
	})
}

func TestAINarrator(t *testing.T) {
	Convey("Given the AI narrator", t, func() {
		ctx := context.Background()
		sub := subject()

		Convey("When the model answers with clean JSON", func() {
			gen := &stubGenerator{out: `{"summary":["Strong design authority."],` +
				`"reassurance":"Keep going.","recommendations":["Launch a cohort.","Raise prices.","Record a teaser."]}`}
			n := narrative.NewAINarrator(gen).Narrate(ctx, sub)

			So(n.SummaryLines, ShouldResemble, []string{"Strong design authority."})
			So(n.Reassurance, ShouldEqual, "Keep going.")
			So(len(n.Recommendations), ShouldEqual, 3)
		})

		Convey("When the model omits fields, templates fill them", func() {
			gen := &stubGenerator{out: `{"summary":["Only a summary."]}`}
			n := narrative.NewAINarrator(gen).Narrate(ctx, sub)

			So(n.SummaryLines, ShouldResemble, []string{"Only a summary."})
			So(n.Reassurance, ShouldEqual, "You are well past the hardest part.")
			So(n.Recommendations, ShouldResemble, []string{"Package your Design expertise into a course."})
		})

		Convey("When the call fails, output is identical in shape to templates", func() {
			gen := &stubGenerator{err: errors.New("deadline exceeded")}
			n := narrative.NewAINarrator(gen).Narrate(ctx, sub)
			So(n, ShouldResemble, narrative.NewTemplateNarrator().Narrate(ctx, sub))
		})

		Convey("When the output has no JSON, templates take over", func() {
			gen := &stubGenerator{out: "sorry, can't do that"}
			n := narrative.NewAINarrator(gen).Narrate(ctx, sub)
			So(n, ShouldResemble, narrative.NewTemplateNarrator().Narrate(ctx, sub))
		})

		Convey("When New receives no generator it selects templates", func() {
			n := narrative.New(nil).Narrate(ctx, sub)
			So(n.Reassurance, ShouldEqual, "You are well past the hardest part.")
		})
	})
}
