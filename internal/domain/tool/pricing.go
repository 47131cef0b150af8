package tool

import (
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Pricing recommends a course price band from audience and material inputs.
var Pricing = Tool{
	Name:  "pricing",
	Title: "Course Pricing",
	Inputs: []Input{
		{Name: "audienceSize", Required: true, Min: 0},
		{Name: "engagementRate", Required: true, Min: 0},
		{Name: "topicDemand", Required: true, Min: 0},
		{Name: "experienceYears", Required: true, Min: 0},
		{Name: "contentHours", Required: true, Min: 0},
	},
	Set: signal.Set{
		Name: "pricing",
		Signals: []signal.Signal{
			{
				Name: "audience", Metric: "audienceSize", MaxPoints: 25,
				Bands: []signal.Band{band(50000, 25), band(10000, 20), band(2500, 14)},
				Slope: 0.005,
			},
			{
				Name: "engagement", Metric: "engagementRate", MaxPoints: 20,
				Bands: []signal.Band{band(10, 20), band(5, 15), band(2, 10)},
				Slope: 5,
			},
			{
				Name: "demand", Metric: "topicDemand", MaxPoints: 20,
				Bands: []signal.Band{band(80, 20), band(60, 15), band(40, 10)},
				Slope: 0.25,
			},
			{
				Name: "experience", Metric: "experienceYears", MaxPoints: 20,
				Bands: []signal.Band{band(10, 20), band(5, 16), band(2, 10)},
				Slope: 5,
			},
			{
				Name: "material", Metric: "contentHours", MaxPoints: 15,
				Bands: []signal.Band{band(20, 15), band(10, 11), band(5, 7)},
				Slope: 1.4,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 80, Name: "premium", Label: "Premium Pricing",
			ValueRange: "$497–$1,997",
			Lines: []string{
				"You scored {score}/100: charge premium prices with confidence.",
				"{experienceYears} years of experience and {contentHours} hours of material justify the top of the market.",
			},
			Reassurance: "Students at this price self-select for commitment. Higher prices improve outcomes.",
			Recommendations: []string{
				"Position against the transformation, not the curriculum length.",
				"Add a payment plan instead of lowering the headline price.",
				"Include limited 1:1 time to anchor the premium tier.",
			},
		},
		{
			Min: 60, Name: "standard", Label: "Standard Pricing",
			ValueRange: "$197–$497",
			Lines: []string{
				"You scored {score}/100: the mid-market band fits your current signals.",
				"An engagement rate of {engagementRate}% says your audience trusts you enough to buy.",
			},
			Reassurance: "Mid-market is where most sustainable course businesses live.",
			Recommendations: []string{
				"Launch at the lower bound and raise the price each cohort.",
				"Collect testimonials aggressively; social proof moves you to premium.",
				"Bundle a community to raise perceived value without more video.",
			},
		},
		{
			Min: 40, Name: "entry", Label: "Entry Pricing",
			ValueRange: "$49–$197",
			Lines: []string{
				"You scored {score}/100: start accessible, then climb.",
				"With an audience of {audienceSize}, volume at a lower price beats silence at a high one.",
			},
			Reassurance: "A cheap first course is a marketing asset, not a ceiling.",
			Recommendations: []string{
				"Ship a tightly-scoped starter course rather than your life's work.",
				"Use early-buyer pricing to reward your existing audience.",
				"Reinvest launch revenue into growing topic demand content.",
			},
		},
		{
			Min: 0, Name: "validate", Label: "Validate First",
			ValueRange: "$0–$49",
			Lines: []string{
				"You scored {score}/100: validate demand before setting a price.",
				"A free or near-free pilot will teach you more than any pricing framework.",
			},
			Reassurance: "Low signals now only mean the audience has not been built yet.",
			Recommendations: []string{
				"Run a free live workshop and ask attendees what they would pay for.",
				"Grow your audience to four figures before a paid launch.",
				"Document your teaching publicly to build demand evidence.",
			},
		},
	},
}
