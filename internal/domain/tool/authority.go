package tool

import (
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Authority is the Channel Content Authority assessment, the canonical
// pipeline tool: its metrics come from acquisition and classification, not
// from request fields, so it declares no numeric inputs.
var Authority = Tool{
	Name:  "authority",
	Title: "Channel Content Authority",
	Set: signal.Set{
		Name: "authority",
		Signals: []signal.Signal{
			{
				Name: "consistency", Metric: "consistencyPercent", MaxPoints: 20,
				Bands: []signal.Band{band(80, 20), band(60, 15), band(40, 10)},
				Slope: 0.25,
			},
			{
				Name: "longevity", Metric: "months", MaxPoints: 20,
				Bands: []signal.Band{band(60, 20), band(36, 16), band(24, 12), band(12, 8)},
				Slope: 0.66,
			},
			{
				Name: "engagement", Metric: "avgComments", MaxPoints: 20,
				Bands: []signal.Band{band(100, 20), band(50, 16), band(20, 12), band(10, 8)},
				Slope: 0.8,
			},
			{
				Name: "depth", Metric: "avgDuration", MaxPoints: 20,
				Bands: []signal.Band{band(20, 20), band(12, 16), band(8, 12)},
				Slope: 1.5,
			},
			{
				Name: "volume", Metric: "itemCount", MaxPoints: 20,
				Bands: []signal.Band{band(100, 20), band(50, 16), band(25, 12), band(10, 8)},
				Slope: 0.8,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 80, Name: "authority", Label: "Channel Authority",
			ValueRange: "$500–$1,500 per course",
			Lines: []string{
				"Your {primaryCategory} channel scored {score}/100, squarely in premium-course territory.",
				"{consistencyPercent}% of your recent videos stay on topic, and viewers leave {avgComments} comments per video on average.",
				"You have been publishing for {months} months; that track record is the trust a high-ticket course needs.",
			},
			Reassurance: "Creators at this level routinely undercharge. Your audience is already sold.",
			Recommendations: []string{
				"Package your {primaryCategory} expertise into a flagship course before adding more free depth.",
				"Anchor pricing to outcomes, not video counts; your authority supports the top of the range.",
				"Turn your most-commented videos into the course outline; the demand signal is already there.",
			},
		},
		{
			Min: 65, Name: "established", Label: "Established Voice",
			ValueRange: "$200–$500 per course",
			Lines: []string{
				"Your {primaryCategory} channel scored {score}/100: an established, trusted voice.",
				"Topic consistency sits at {consistencyPercent}% across the videos we analyzed.",
				"Average video length of {avgDuration} minutes shows you go deeper than quick-hit content.",
			},
			Reassurance: "You are past the hardest part: people already listen when you teach.",
			Recommendations: []string{
				"Launch a focused mid-priced course; leave the flagship for after your first cohort.",
				"Tighten your publishing cadence; consistency is your fastest path to the next tier.",
				"Survey your {primaryCategory} viewers for the one problem they would pay to solve this month.",
			},
		},
		{
			Min: 50, Name: "rising", Label: "Rising Creator",
			ValueRange: "$100–$250 per course",
			Lines: []string{
				"Your channel scored {score}/100. Momentum is visible and authority is forming.",
				"You average {avgComments} comments per video; engagement is the signal to grow next.",
				"With {itemCount} videos analyzed, your library is large enough to seed a starter course.",
			},
			Reassurance: "Most successful course creators launched from exactly this position.",
			Recommendations: []string{
				"Ship a small paid workshop before a full course to validate pricing.",
				"Double down on your {primaryCategory} niche instead of widening the topic mix.",
				"End every video with one question to lift comment engagement.",
			},
		},
		{
			Min: 0, Name: "emerging", Label: "Emerging Channel",
			ValueRange: "$50–$150 per course",
			Lines: []string{
				"Your channel scored {score}/100. It is early days, with clear room to grow on every signal.",
				"We analyzed {itemCount} videos; the fastest wins are consistency and longer-form depth.",
			},
			Reassurance: "Every authority channel once scored here. The signals compound quickly.",
			Recommendations: []string{
				"Pick one {primaryCategory} sub-topic and publish on it weekly for three months.",
				"Aim for 10+ minute videos; depth moves both watch time and your authority score.",
				"Start an email list now so your first course has a launch audience.",
			},
		},
	},
}
