package tool_test

import (
	"testing"

	tool "github.com/courseloom/insight/internal/domain/tool"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistryInvariants(t *testing.T) {
	Convey("Given every registered tool", t, func() {
		tools := tool.All()
		So(len(tools), ShouldEqual, 8)

		for _, tl := range tools {
			tl := tl
			Convey("Tool "+tl.Name+" holds the scoring invariants", func() {
				Convey("Signal max points sum to exactly 100", func() {
					So(tl.Set.MaxPointsTotal(), ShouldEqual, 100.0)
				})

				Convey("The tier scale partitions the score range", func() {
					So(tl.Tiers.Validate(), ShouldBeNil)
					for score := 0; score <= 100; score++ {
						So(tl.Tiers.Classify(score).Name, ShouldNotBeEmpty)
					}
				})

				Convey("Each signal stays within its ceiling across raw inputs", func() {
					for _, sig := range tl.Set.Signals {
						for raw := -100.0; raw <= 1_000_000; raw *= -1.7 {
							p := sig.Score(raw)
							So(p, ShouldBeGreaterThanOrEqualTo, 0)
							So(p, ShouldBeLessThanOrEqualTo, sig.MaxPoints)
						}
					}
				})
			})
		}
	})
}

func TestLookup(t *testing.T) {
	Convey("Given the tool registry", t, func() {
		Convey("Known names resolve", func() {
			tl, ok := tool.Lookup("pricing")
			So(ok, ShouldBeTrue)
			So(tl.Title, ShouldEqual, "Course Pricing")
		})

		Convey("Unknown names do not", func() {
			_, ok := tool.Lookup("astrology")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the monetization input spec", t, func() {
		mon, _ := tool.Lookup("monetization")

		Convey("Complete valid input passes", func() {
			err := mon.Validate(map[string]float64{
				"subscribers": 12000, "avgViews": 3000, "avgComments": 40, "uploadsPerMonth": 4,
			})
			So(err, ShouldBeNil)
		})

		Convey("A missing required field is rejected", func() {
			err := mon.Validate(map[string]float64{"subscribers": 12000})
			So(err, ShouldWrap, tool.ErrMissingInput)
		})

		Convey("A value below the field floor is rejected", func() {
			err := mon.Validate(map[string]float64{
				"subscribers": -5, "avgViews": 3000, "avgComments": 40, "uploadsPerMonth": 4,
			})
			So(err, ShouldWrap, tool.ErrInvalidInput)
		})
	})
}

func TestDerivedMetrics(t *testing.T) {
	Convey("Given the monetization tool", t, func() {
		mon, _ := tool.Lookup("monetization")

		Convey("Ratios and niche demand derive from the inputs", func() {
			m := mon.Metrics(map[string]float64{
				"subscribers": 10000, "avgViews": 2000, "avgComments": 40, "uploadsPerMonth": 4,
			}, map[string]string{"niche": "Finance"})
			So(m["viewRate"], ShouldEqual, 20.0)
			So(m["interaction"], ShouldEqual, 2.0)
			So(m["nicheDemand"], ShouldEqual, 88.0)
		})

		Convey("Zero denominators never produce NaN or Inf", func() {
			m := mon.Metrics(map[string]float64{
				"subscribers": 0, "avgViews": 0, "avgComments": 0, "uploadsPerMonth": 0,
			}, nil)
			So(m["viewRate"], ShouldEqual, 0.0)
			So(m["interaction"], ShouldEqual, 0.0)
			So(m["nicheDemand"], ShouldEqual, 50.0)
		})
	})

	Convey("Given the workshop tool", t, func() {
		ws, _ := tool.Lookup("workshop")

		Convey("Revenue, hourly return, and margin derive correctly", func() {
			m := ws.Metrics(map[string]float64{
				"attendees": 20, "ticketPrice": 100, "prepHours": 15, "deliveryHours": 5, "materialsCost": 200,
			}, nil)
			So(m["revenue"], ShouldEqual, 2000.0)
			So(m["hourlyReturn"], ShouldEqual, 90.0)
			So(m["marginPercent"], ShouldEqual, 90.0)
		})

		Convey("Zero hours or zero revenue are guarded", func() {
			m := ws.Metrics(map[string]float64{
				"attendees": 0, "ticketPrice": 0, "prepHours": 0, "deliveryHours": 0, "materialsCost": 0,
			}, nil)
			So(m["hourlyReturn"], ShouldEqual, 0.0)
			So(m["marginPercent"], ShouldEqual, 0.0)
		})
	})

	Convey("Given the authority tool's end-to-end scoring", t, func() {
		auth, _ := tool.Lookup("authority")

		Convey("Strong channel metrics land in the top tier", func() {
			res := auth.Set.Evaluate(map[string]float64{
				"consistencyPercent": 90, "months": 72, "avgComments": 120,
				"avgDuration": 22, "itemCount": 150,
			})
			So(res.Total, ShouldEqual, 100)
			So(auth.Tiers.Classify(res.Total).Name, ShouldEqual, "authority")
		})

		Convey("A young, quiet channel lands at the bottom tier", func() {
			res := auth.Set.Evaluate(map[string]float64{
				"consistencyPercent": 30, "months": 3, "avgComments": 1,
				"avgDuration": 4, "itemCount": 5,
			})
			So(res.Total, ShouldBeLessThan, 50)
			So(auth.Tiers.Classify(res.Total).Name, ShouldBeIn, []string{"emerging", "rising"})
		})
	})
}
