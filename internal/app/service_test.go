package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/courseloom/insight/internal/adapters/catalog"
	app "github.com/courseloom/insight/internal/app"
	"github.com/courseloom/insight/internal/domain/model"
	"github.com/courseloom/insight/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeCatalog struct {
	channel    model.Channel
	items      []model.ContentItem
	resolveErr error
}

func (f *fakeCatalog) ResolveChannel(_ context.Context, _ string) (model.Channel, error) {
	if f.resolveErr != nil {
		return model.Channel{}, f.resolveErr
	}
	return f.channel, nil
}

func (f *fakeCatalog) Videos(_ context.Context, _ string) []model.ContentItem {
	return f.items
}

func golangItems(n int, oldest time.Time) []model.ContentItem {
	items := make([]model.ContentItem, n)
	for i := range items {
		items[i] = model.ContentItem{
			ID:              fmt.Sprintf("v%02d", i),
			Title:           fmt.Sprintf("Golang tutorial part %d", i+1),
			PublishedAt:     oldest.AddDate(0, i, 0),
			DurationMinutes: 25,
			ViewCount:       4000,
			CommentCount:    120,
		}
	}
	return items
}

func TestService_EvaluateAuthority(t *testing.T) {
	Convey("Given a service with a working catalog", t, func() {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		cat := &fakeCatalog{
			channel: model.Channel{ID: "UC123", Title: "Go Lessons", Subscribers: 52000},
			items:   golangItems(12, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		}
		svc := app.New(
			app.WithCatalog(cat),
			app.WithClock(func() time.Time { return now }),
		)

		Convey("When evaluating a channel", func() {
			rep, err := svc.EvaluateAuthority(context.Background(), "https://youtube.com/@golessons")

			Convey("Then it should produce a fully shaped report", func() {
				So(err, ShouldBeNil)
				So(rep, ShouldNotBeNil)

				// consistency 20 + longevity 20 + engagement 20 + depth 20
				// + volume 8 (12 items) = 88.
				So(rep.TotalScore, ShouldEqual, 88)
				So(rep.Tier, ShouldEqual, "authority")
				So(rep.TierLabel, ShouldEqual, "Channel Authority")
				So(rep.Breakdown["volume"], ShouldEqual, 8)
				So(rep.ItemsAnalyzed, ShouldEqual, 12)

				So(rep.Channel.ID, ShouldEqual, "UC123")
				So(rep.Channel.Title, ShouldEqual, "Go Lessons")
				So(rep.Channel.Subscribers, ShouldEqual, 52000)

				So(rep.Classification.PrimaryCategory, ShouldEqual, "Programming & Tech")
				So(rep.Classification.ConsistencyPercent, ShouldEqual, 100)
				So(rep.Classification.Complexity["basic"], ShouldEqual, 40)

				So(rep.SummaryLines, ShouldNotBeEmpty)
				So(rep.Reassurance, ShouldNotBeEmpty)
				So(rep.Recommendations, ShouldNotBeEmpty)
				So(rep.DerivedMetrics["avgDuration"], ShouldEqual, 25)
				So(rep.DerivedMetrics["engagementRate"], ShouldEqual, 3)
			})

			Convey("Then the narrative should have its placeholders filled", func() {
				So(err, ShouldBeNil)
				for _, line := range rep.SummaryLines {
					So(line, ShouldNotContainSubstring, "{")
				}
			})
		})

		Convey("When the catalog returns no items", func() {
			cat.items = nil
			rep, err := svc.EvaluateAuthority(context.Background(), "@empty")

			Convey("Then it should report no content", func() {
				So(rep, ShouldBeNil)
				So(errors.Is(err, app.ErrNoContent), ShouldBeTrue)
			})
		})

		Convey("When the channel cannot be resolved", func() {
			cat.resolveErr = catalog.ErrChannelNotFound
			rep, err := svc.EvaluateAuthority(context.Background(), "@missing")

			Convey("Then it should report channel not found", func() {
				So(rep, ShouldBeNil)
				So(errors.Is(err, app.ErrChannelNotFound), ShouldBeTrue)
			})
		})

		Convey("When resolution fails with an upstream error", func() {
			cat.resolveErr = catalog.ErrUnavailable
			rep, err := svc.EvaluateAuthority(context.Background(), "@flaky")

			Convey("Then there is nothing to score and it reads as not found", func() {
				So(rep, ShouldBeNil)
				So(errors.Is(err, app.ErrChannelNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service without a catalog", t, func() {
		svc := app.New()

		Convey("When evaluating a channel", func() {
			rep, err := svc.EvaluateAuthority(context.Background(), "@any")

			Convey("Then it should report the missing configuration", func() {
				So(rep, ShouldBeNil)
				So(errors.Is(err, app.ErrNotConfigured), ShouldBeTrue)
			})
		})
	})
}

func TestService_EvaluateTool(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := app.New()

		Convey("When evaluating monetization with complete inputs", func() {
			rep, err := svc.EvaluateTool(context.Background(), "monetization",
				map[string]float64{
					"subscribers":     50000,
					"avgViews":        10000,
					"avgComments":     300,
					"uploadsPerMonth": 6,
				},
				map[string]string{"niche": "programming"},
			)

			Convey("Then it should produce a shaped report", func() {
				So(err, ShouldBeNil)
				So(rep, ShouldNotBeNil)
				So(rep.Tool, ShouldEqual, "monetization")
				So(rep.TotalScore, ShouldBeBetweenOrEqual, 0, 100)
				So(rep.Tier, ShouldNotBeEmpty)
				So(rep.Breakdown, ShouldNotBeEmpty)
				So(rep.DerivedMetrics["viewRate"], ShouldEqual, 20)
				So(rep.DerivedMetrics["interaction"], ShouldEqual, 3)
				So(rep.DerivedMetrics["nicheDemand"], ShouldEqual, 90)
				So(rep.SummaryLines, ShouldNotBeEmpty)
			})
		})

		Convey("When a required field is missing", func() {
			rep, err := svc.EvaluateTool(context.Background(), "monetization",
				map[string]float64{"subscribers": 50000}, nil)

			Convey("Then validation should fail before anything runs", func() {
				So(rep, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "avgViews")
			})
		})

		Convey("When the tool name is unknown", func() {
			rep, err := svc.EvaluateTool(context.Background(), "astrology", nil, nil)

			Convey("Then it should report an unknown tool", func() {
				So(rep, ShouldBeNil)
				So(errors.Is(err, app.ErrUnknownTool), ShouldBeTrue)
			})
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a service with some evaluations", t, func() {
		svc := app.New()

		_, _ = svc.EvaluateTool(context.Background(), "monetization",
			map[string]float64{
				"subscribers":     1000,
				"avgViews":        200,
				"avgComments":     10,
				"uploadsPerMonth": 2,
			}, nil)

		Convey("When fetching stats", func() {
			stats := svc.GetStats()

			Convey("Then counters should reflect the work done", func() {
				So(stats["evaluations_total"], ShouldEqual, int64(1))
				So(stats["catalog_enabled"], ShouldBeFalse)
				So(stats["tools"], ShouldEqual, 8)
				perTool, ok := stats["evaluations"].(map[string]int64)
				So(ok, ShouldBeTrue)
				So(perTool["monetization"], ShouldEqual, int64(1))
			})
		})
	})
}
