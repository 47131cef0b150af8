package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/courseloom/insight/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReportWireShape(t *testing.T) {
	Convey("Given an authority report", t, func() {
		rep := types.AuthorityReport{
			Report: types.Report{
				Tool:            "authority",
				TotalScore:      88,
				Tier:            "authority",
				TierLabel:       "Channel Authority",
				Breakdown:       map[string]int{"consistency": 20},
				DerivedMetrics:  map[string]float64{"avgDuration": 25},
				SummaryLines:    []string{"line"},
				Reassurance:     "keep going",
				Recommendations: []string{"do the thing"},
			},
			Channel:       types.ChannelInfo{ID: "UC123", Title: "Go Lessons", Subscribers: 52000},
			ItemsAnalyzed: 12,
		}

		Convey("When marshaling to JSON", func() {
			b, err := json.Marshal(rep)

			Convey("Then the wire keys should match the API schema", func() {
				So(err, ShouldBeNil)
				s := string(b)
				So(s, ShouldContainSubstring, `"tool":"authority"`)
				So(s, ShouldContainSubstring, `"totalScore":88`)
				So(s, ShouldContainSubstring, `"tierLabel":"Channel Authority"`)
				So(s, ShouldContainSubstring, `"itemsAnalyzed":12`)
				So(s, ShouldContainSubstring, `"subscribers":52000`)
			})

			Convey("Then an empty value range should be omitted", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldNotContainSubstring, "valueRange")
			})
		})
	})
}
