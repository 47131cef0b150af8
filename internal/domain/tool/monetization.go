package tool

import (
	"strings"

	"github.com/courseloom/insight/internal/domain/metric"
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// nicheDemand maps a self-reported niche to a 0-100 demand estimate.
// Unknown niches read as the neutral midpoint.
var nicheDemand = map[string]float64{
	"tech":                 90,
	"programming":          90,
	"finance":              88,
	"business":             85,
	"marketing":            80,
	"personal development": 78,
	"health":               75,
	"fitness":              75,
	"education":            72,
	"design":               70,
	"language":             68,
	"beauty":               65,
	"photography":          62,
	"music":                60,
	"science":              60,
	"cooking":              58,
	"gaming":               55,
	"travel":               50,
	"crafts":               48,
}

const neutralDemand = 50

// Monetization estimates how ready a channel is to earn beyond ad revenue.
var Monetization = Tool{
	Name:  "monetization",
	Title: "Monetization Readiness",
	Inputs: []Input{
		{Name: "subscribers", Required: true, Min: 0},
		{Name: "avgViews", Required: true, Min: 0},
		{Name: "avgComments", Required: true, Min: 0},
		{Name: "uploadsPerMonth", Required: true, Min: 0},
	},
	StringInputs: []string{"niche"},
	Derive: func(nums map[string]float64, strs map[string]string) map[string]float64 {
		demand := float64(neutralDemand)
		if d, ok := nicheDemand[strings.ToLower(strings.TrimSpace(strs["niche"]))]; ok {
			demand = d
		}
		return map[string]float64{
			"viewRate":    metric.Ratio(nums["avgViews"], nums["subscribers"]) * 100,
			"interaction": metric.Ratio(nums["avgComments"], nums["avgViews"]) * 100,
			"nicheDemand": demand,
		}
	},
	Set: signal.Set{
		Name: "monetization",
		Signals: []signal.Signal{
			{
				Name: "audience", Metric: "subscribers", MaxPoints: 30,
				Bands: []signal.Band{band(100000, 30), band(25000, 24), band(10000, 18), band(1000, 12)},
				Slope: 0.012,
			},
			{
				Name: "viewRate", Metric: "viewRate", MaxPoints: 25,
				Bands: []signal.Band{band(20, 25), band(10, 20), band(5, 14)},
				Slope: 2.8,
			},
			{
				Name: "interaction", Metric: "interaction", MaxPoints: 15,
				Bands: []signal.Band{band(2, 15), band(1, 11), band(0.5, 7)},
				Slope: 14,
			},
			{
				Name: "cadence", Metric: "uploadsPerMonth", MaxPoints: 15,
				Bands: []signal.Band{band(8, 15), band(4, 12), band(2, 8)},
				Slope: 4,
			},
			{
				Name: "demand", Metric: "nicheDemand", MaxPoints: 15,
				Bands: []signal.Band{band(80, 15), band(60, 11), band(40, 7)},
				Slope: 0.17,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 80, Name: "ready", Label: "Monetization Ready",
			ValueRange: "$2,000–$10,000/month potential",
			Lines: []string{
				"You scored {score}/100: your audience can support paid products today.",
				"A {viewRate}% view rate on {subscribers} subscribers is well above the bar sponsors and students look for.",
			},
			Reassurance: "Waiting longer would leave money on the table, not reduce risk.",
			Recommendations: []string{
				"Launch a paid offer within the next 60 days while engagement is hot.",
				"Start with a course or cohort; ad revenue alone undervalues an audience like this.",
				"Mention your upcoming offer in every video to warm the launch.",
			},
		},
		{
			Min: 60, Name: "close", Label: "Almost There",
			ValueRange: "$500–$2,000/month potential",
			Lines: []string{
				"You scored {score}/100: one or two signals away from a confident launch.",
				"Interaction sits at {interaction}% of views; nudging that up is worth more than more subscribers.",
			},
			Reassurance: "This stage tends to flip fast once the weakest signal moves.",
			Recommendations: []string{
				"Pre-sell a small workshop to validate willingness to pay.",
				"Lift your cadence toward {uploadsPerMonth}+ uploads a month without sacrificing depth.",
				"Collect emails now; launches convert audiences you own.",
			},
		},
		{
			Min: 40, Name: "building", Label: "Building the Base",
			ValueRange: "$100–$500/month potential",
			Lines: []string{
				"You scored {score}/100: the foundation is forming but not yet load-bearing.",
				"Focus on view rate first; {viewRate}% says reach, not size, is the constraint.",
			},
			Reassurance: "Monetizing too early is the one mistake this score protects you from.",
			Recommendations: []string{
				"Tighten your niche so the algorithm knows who to show you to.",
				"Study your three best-performing videos and make more of exactly those.",
				"Offer a free lead magnet to begin building an owned audience.",
			},
		},
		{
			Min: 0, Name: "early", Label: "Early Days",
			ValueRange: "Focus on growth first",
			Lines: []string{
				"You scored {score}/100: keep building before monetizing.",
				"Every strong earner once had these numbers; consistency changes them.",
			},
			Reassurance: "No signal here is a verdict. All of them respond to publishing volume.",
			Recommendations: []string{
				"Commit to a fixed weekly publishing schedule for 90 days.",
				"Pick one niche and stay in it; mixed topics suppress every other signal.",
				"Engage in your comments daily to seed the interaction habit.",
			},
		},
	},
}
