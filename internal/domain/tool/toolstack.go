package tool

import (
	"github.com/courseloom/insight/internal/domain/metric"
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Toolstack scores how lean a creator's tool stack is. Higher scores mean
// less complexity drag.
var Toolstack = Tool{
	Name:  "toolstack",
	Title: "Tool-Stack Complexity",
	Inputs: []Input{
		{Name: "toolCount", Required: true, Min: 0},
		{Name: "monthlySpend", Required: true, Min: 0},
		{Name: "manualHoursPerWeek", Required: true, Min: 0},
		{Name: "integrationCount", Required: true, Min: 0},
		{Name: "teamSize", Required: true, Min: 1},
	},
	Derive: func(nums map[string]float64, _ map[string]string) map[string]float64 {
		team := nums["teamSize"]
		return map[string]float64{
			"leanness":        ease(nums["toolCount"], 6),
			"spendEfficiency": ease(metric.Ratio(nums["monthlySpend"], team), 0.5),
			"automation":      ease(nums["manualHoursPerWeek"], 4),
			"cohesion":        ease(nums["integrationCount"], 8),
			"fit":             ease(metric.Ratio(nums["toolCount"], team), 10),
		}
	},
	Set: signal.Set{
		Name: "toolstack",
		Signals: []signal.Signal{
			{Name: "leanness", Metric: "leanness", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "spend", Metric: "spendEfficiency", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "automation", Metric: "automation", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "cohesion", Metric: "cohesion", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "fit", Metric: "fit", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 75, Name: "lean", Label: "Lean Stack",
			ValueRange: "Minimal consolidation upside",
			Lines: []string{
				"You scored {score}/100: your stack is lean and well matched to the team.",
				"{toolCount} tools for {teamSize} person(s) is on the efficient frontier.",
			},
			Reassurance: "Resist adding tools; this score is an asset worth protecting.",
			Recommendations: []string{
				"Review the stack quarterly and cut anything unused for 60 days.",
				"Document the stack so growth does not silently add duplicates.",
				"Negotiate annual pricing on the tools you know you are keeping.",
			},
		},
		{
			Min: 55, Name: "manageable", Label: "Manageable",
			ValueRange: "10–20% spend reduction available",
			Lines: []string{
				"You scored {score}/100: workable, with visible consolidation wins.",
				"${monthlySpend}/month across {toolCount} tools usually hides two overlapping subscriptions.",
			},
			Reassurance: "Most creator businesses sit exactly here; small trims compound.",
			Recommendations: []string{
				"List every tool against the job it does and merge the overlaps.",
				"Replace your most brittle integration with a native feature.",
				"Automate the single biggest chunk of the {manualHoursPerWeek} manual hours.",
			},
		},
		{
			Min: 35, Name: "tangled", Label: "Tangled",
			ValueRange: "20–40% spend reduction available",
			Lines: []string{
				"You scored {score}/100: the stack is costing real time and money.",
				"{manualHoursPerWeek} manual hours a week is the clearest symptom of tool sprawl.",
			},
			Reassurance: "Tangled stacks grew one reasonable decision at a time. Untangling is mechanical.",
			Recommendations: []string{
				"Pick an all-in-one platform for the course/email/payments core.",
				"Cancel tools before replacing them; sprawl survives on 'just in case'.",
				"Cut integrations to the two that move revenue.",
			},
		},
		{
			Min: 0, Name: "overgrown", Label: "Overgrown",
			ValueRange: "40%+ spend reduction available",
			Lines: []string{
				"You scored {score}/100: the stack is running you, not the other way around.",
				"{integrationCount} integrations for a team of {teamSize} is a maintenance job in itself.",
			},
			Reassurance: "A score this low means the easiest wins of your year are sitting right here.",
			Recommendations: []string{
				"Declare a stack freeze: nothing new until three tools are gone.",
				"Consolidate onto one platform for everything student-facing.",
				"Track a week of manual work and automate or delete the top item.",
			},
		},
	},
}
