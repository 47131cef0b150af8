package tool

import (
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Income measures how stable a creator's revenue base is.
var Income = Tool{
	Name:  "income",
	Title: "Income Stability",
	Inputs: []Input{
		{Name: "incomeStreams", Required: true, Min: 0},
		{Name: "recurringPercent", Required: true, Min: 0},
		{Name: "audienceOwnedPercent", Required: true, Min: 0},
		{Name: "monthsRunway", Required: true, Min: 0},
		{Name: "monthlyRevenue", Required: true, Min: 0},
	},
	Set: signal.Set{
		Name: "income",
		Signals: []signal.Signal{
			{
				Name: "diversification", Metric: "incomeStreams", MaxPoints: 25,
				Bands: []signal.Band{band(4, 25), band(3, 20), band(2, 13)},
				Slope: 6.5,
			},
			{
				Name: "recurring", Metric: "recurringPercent", MaxPoints: 25,
				Bands: []signal.Band{band(50, 25), band(30, 19), band(15, 12)},
				Slope: 0.8,
			},
			{
				Name: "ownership", Metric: "audienceOwnedPercent", MaxPoints: 20,
				Bands: []signal.Band{band(60, 20), band(40, 15), band(20, 9)},
				Slope: 0.45,
			},
			{
				Name: "runway", Metric: "monthsRunway", MaxPoints: 15,
				Bands: []signal.Band{band(6, 15), band(3, 11), band(1, 5)},
				Slope: 5,
			},
			{
				Name: "scale", Metric: "monthlyRevenue", MaxPoints: 15,
				Bands: []signal.Band{band(10000, 15), band(3000, 11), band(1000, 7)},
				Slope: 0.007,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 80, Name: "resilient", Label: "Resilient",
			ValueRange: "Low platform risk",
			Lines: []string{
				"You scored {score}/100: your income would survive losing any single platform.",
				"{recurringPercent}% recurring revenue across {incomeStreams} streams is a genuinely rare position.",
			},
			Reassurance: "You have already done the hard diversification work most creators defer.",
			Recommendations: []string{
				"Shift focus from adding streams to deepening the best one.",
				"Automate the smallest streams so they cost no attention.",
				"Raise prices on your recurring offer; stability earns pricing power.",
			},
		},
		{
			Min: 60, Name: "stable", Label: "Stable",
			ValueRange: "Moderate platform risk",
			Lines: []string{
				"You scored {score}/100: a solid base with one or two soft spots.",
				"You own {audienceOwnedPercent}% of your audience reach; push that number up first.",
			},
			Reassurance: "Stability is a ratchet. Each improvement here is permanent.",
			Recommendations: []string{
				"Convert one ad-hoc stream into a subscription or retainer.",
				"Move followers to your email list with a weekly send.",
				"Bank toward {monthsRunway}+ months of runway before big bets.",
			},
		},
		{
			Min: 40, Name: "exposed", Label: "Exposed",
			ValueRange: "Elevated platform risk",
			Lines: []string{
				"You scored {score}/100: one platform change could hurt badly.",
				"With {incomeStreams} stream(s), diversification is the highest-leverage move available.",
			},
			Reassurance: "Exposure is a structural problem with known fixes, not a talent problem.",
			Recommendations: []string{
				"Launch a second income stream this quarter, ideally recurring.",
				"Start an email list today; owned reach is your insurance policy.",
				"Cut burn until runway reaches three months.",
			},
		},
		{
			Min: 0, Name: "fragile", Label: "Fragile",
			ValueRange: "High platform risk",
			Lines: []string{
				"You scored {score}/100: treat stability as the current project.",
				"Every signal here improves with the same move: an owned, recurring offer.",
			},
			Reassurance: "Fragile is where everyone starts. The fixes are boring and they work.",
			Recommendations: []string{
				"Pick one recurring product (membership, retainer, subscription) and ship it.",
				"Set aside a fixed percent of every payout as runway.",
				"Audit which platform drives real revenue and double down there.",
			},
		},
	},
}
