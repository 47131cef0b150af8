package tool

import (
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// easeBands is the shared ladder for derived 0-100 "ease" metrics.
func easeBands() []signal.Band {
	return []signal.Band{band(85, 20), band(65, 15), band(45, 10)}
}

// ease converts a raw size into a 0-100 ease estimate: full marks at zero
// size, dropping by perUnit for each unit, floored at 0.
func ease(raw, perUnit float64) float64 {
	e := 100 - raw*perUnit
	if e < 0 {
		return 0
	}
	return e
}

// Migration estimates how smoothly an existing course business moves onto
// the platform. Higher scores mean an easier migration.
var Migration = Tool{
	Name:  "migration",
	Title: "Migration Estimate",
	Inputs: []Input{
		{Name: "courseCount", Required: true, Min: 0},
		{Name: "lessonCount", Required: true, Min: 0},
		{Name: "videoHours", Required: true, Min: 0},
		{Name: "studentCount", Required: true, Min: 0},
		{Name: "integrationCount", Required: true, Min: 0},
	},
	Derive: func(nums map[string]float64, _ map[string]string) map[string]float64 {
		courses := nums["courseCount"]
		if courses > 0 {
			courses--
		}
		return map[string]float64{
			"scopeEase":       ease(courses, 8),
			"lessonEase":      ease(nums["lessonCount"], 0.4),
			"mediaEase":       ease(nums["videoHours"], 0.8),
			"studentEase":     ease(nums["studentCount"], 0.01),
			"integrationEase": ease(nums["integrationCount"], 15),
		}
	},
	Set: signal.Set{
		Name: "migration",
		Signals: []signal.Signal{
			{Name: "scope", Metric: "scopeEase", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "lessons", Metric: "lessonEase", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "media", Metric: "mediaEase", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "students", Metric: "studentEase", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
			{Name: "integrations", Metric: "integrationEase", MaxPoints: 20, Bands: easeBands(), Slope: 0.11},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 75, Name: "turnkey", Label: "Turnkey",
			ValueRange: "1–3 days",
			Lines: []string{
				"You scored {score}/100: this migration is close to turnkey.",
				"{courseCount} course(s) and {lessonCount} lessons import cleanly with the bulk tools.",
			},
			Reassurance: "Migrations this size almost never surprise anyone.",
			Recommendations: []string{
				"Run the bulk importer on a single course first as a dry run.",
				"Schedule the student email for the day content verification finishes.",
				"Keep the old platform read-only for two weeks as a safety net.",
			},
		},
		{
			Min: 55, Name: "standard", Label: "Standard",
			ValueRange: "1–2 weeks",
			Lines: []string{
				"You scored {score}/100: a standard migration with a predictable path.",
				"{videoHours} hours of video is the long pole; everything else is quick.",
			},
			Reassurance: "This is the most common migration profile and the playbook is well worn.",
			Recommendations: []string{
				"Start video uploads first and migrate structure while they process.",
				"Map your {integrationCount} integration(s) to native features before rebuilding them.",
				"Migrate students in batches, starting with inactive accounts.",
			},
		},
		{
			Min: 35, Name: "involved", Label: "Involved",
			ValueRange: "2–6 weeks",
			Lines: []string{
				"You scored {score}/100: sizable, but routine with staging.",
				"{studentCount} students means sequencing matters more than speed.",
			},
			Reassurance: "Involved migrations succeed on planning, and that plan is mostly written for you.",
			Recommendations: []string{
				"Freeze new content on the old platform before you start.",
				"Pilot with one cohort of students and gather friction reports.",
				"Assign one owner per integration rather than one owner for all.",
			},
		},
		{
			Min: 0, Name: "assisted", Label: "Assisted Migration",
			ValueRange: "6+ weeks, with support",
			Lines: []string{
				"You scored {score}/100: large enough that you should not do this alone.",
				"The score reflects scale, not difficulty; every piece has a known process.",
			},
			Reassurance: "Catalogs this size migrate successfully every month, just not in a weekend.",
			Recommendations: []string{
				"Book a guided migration session before moving anything.",
				"Deduplicate and archive stale courses first; most large catalogs shrink 30%.",
				"Plan a phased cutover with both platforms live during the overlap.",
			},
		},
	},
}
