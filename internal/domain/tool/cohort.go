package tool

import (
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Cohort sizes a first cohort launch from reach and capacity inputs.
var Cohort = Tool{
	Name:  "cohort",
	Title: "Cohort Sizing",
	Inputs: []Input{
		{Name: "emailListSize", Required: true, Min: 0},
		{Name: "socialFollowing", Required: true, Min: 0},
		{Name: "engagementRate", Required: true, Min: 0},
		{Name: "launchBudget", Required: true, Min: 0},
		{Name: "hoursPerWeek", Required: true, Min: 0},
	},
	Set: signal.Set{
		Name: "cohort",
		Signals: []signal.Signal{
			{
				Name: "list", Metric: "emailListSize", MaxPoints: 30,
				Bands: []signal.Band{band(10000, 30), band(2500, 24), band(500, 16)},
				Slope: 0.032,
			},
			{
				Name: "social", Metric: "socialFollowing", MaxPoints: 20,
				Bands: []signal.Band{band(50000, 20), band(10000, 15), band(2000, 10)},
				Slope: 0.005,
			},
			{
				Name: "engagement", Metric: "engagementRate", MaxPoints: 20,
				Bands: []signal.Band{band(8, 20), band(4, 15), band(2, 10)},
				Slope: 5,
			},
			{
				Name: "budget", Metric: "launchBudget", MaxPoints: 15,
				Bands: []signal.Band{band(2000, 15), band(500, 11), band(100, 7)},
				Slope: 0.07,
			},
			{
				Name: "capacity", Metric: "hoursPerWeek", MaxPoints: 15,
				Bands: []signal.Band{band(15, 15), band(8, 11), band(4, 7)},
				Slope: 1.75,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 80, Name: "large", Label: "Large Cohort",
			ValueRange: "50–150 students",
			Lines: []string{
				"You scored {score}/100: your reach supports a large first cohort.",
				"An email list of {emailListSize} is the strongest launch asset you have.",
			},
			Reassurance: "Big cohorts feel risky, but your numbers absorb normal conversion rates easily.",
			Recommendations: []string{
				"Cap enrollment anyway; scarcity protects completion rates.",
				"Hire a launch assistant with part of the {launchBudget} budget.",
				"Segment your list and warm it for two weeks before cart open.",
			},
		},
		{
			Min: 60, Name: "medium", Label: "Medium Cohort",
			ValueRange: "20–50 students",
			Lines: []string{
				"You scored {score}/100: aim for a mid-sized, high-touch cohort.",
				"With {hoursPerWeek} hours a week available, this size keeps quality sustainable.",
			},
			Reassurance: "Medium cohorts are the sweet spot for testimonials and word of mouth.",
			Recommendations: []string{
				"Price for margin, not volume, at this size.",
				"Run a waitlist so overflow demand seeds cohort two.",
				"Batch your live sessions to protect your weekly capacity.",
			},
		},
		{
			Min: 40, Name: "small", Label: "Small Cohort",
			ValueRange: "8–20 students",
			Lines: []string{
				"You scored {score}/100: a small founding cohort fits your current reach.",
				"A {engagementRate}% engagement rate means your warmest followers will convert.",
			},
			Reassurance: "Founding cohorts forgive rough edges and generate the best feedback of your career.",
			Recommendations: []string{
				"Call it a founding cohort and discount in exchange for feedback.",
				"Personally invite your most engaged followers rather than open-enrolling.",
				"Keep delivery simple: live calls beat polished video at this scale.",
			},
		},
		{
			Min: 0, Name: "pilot", Label: "Pilot Group",
			ValueRange: "3–8 students",
			Lines: []string{
				"You scored {score}/100: start with a hand-picked pilot group.",
				"Tiny groups turn into case studies, and case studies sell the next cohort.",
			},
			Reassurance: "Every large cohort program started with a handful of believers.",
			Recommendations: []string{
				"Recruit pilot students 1:1 from your existing audience.",
				"Charge something, even a token price; free students rarely finish.",
				"Grow your email list before attempting a public launch.",
			},
		},
	},
}
