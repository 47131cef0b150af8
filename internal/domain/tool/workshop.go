package tool

import (
	"github.com/courseloom/insight/internal/domain/metric"
	"github.com/courseloom/insight/internal/domain/signal"
	"github.com/courseloom/insight/internal/domain/tier"
)

// Workshop evaluates the return on a planned live workshop.
var Workshop = Tool{
	Name:  "workshop",
	Title: "Workshop ROI",
	Inputs: []Input{
		{Name: "attendees", Required: true, Min: 0},
		{Name: "ticketPrice", Required: true, Min: 0},
		{Name: "prepHours", Required: true, Min: 0},
		{Name: "deliveryHours", Required: true, Min: 0},
		{Name: "materialsCost", Required: true, Min: 0},
	},
	Derive: func(nums map[string]float64, _ map[string]string) map[string]float64 {
		revenue := nums["attendees"] * nums["ticketPrice"]
		profit := revenue - nums["materialsCost"]
		hours := nums["prepHours"] + nums["deliveryHours"]
		return map[string]float64{
			"revenue":       revenue,
			"hourlyReturn":  metric.Ratio(profit, hours),
			"marginPercent": metric.Ratio(profit, revenue) * 100,
		}
	},
	Set: signal.Set{
		Name: "workshop",
		Signals: []signal.Signal{
			{
				Name: "revenue", Metric: "revenue", MaxPoints: 30,
				Bands: []signal.Band{band(5000, 30), band(2000, 24), band(500, 15)},
				Slope: 0.03,
			},
			{
				Name: "hourlyReturn", Metric: "hourlyReturn", MaxPoints: 30,
				Bands: []signal.Band{band(200, 30), band(100, 24), band(50, 15)},
				Slope: 0.3,
			},
			{
				Name: "margin", Metric: "marginPercent", MaxPoints: 20,
				Bands: []signal.Band{band(90, 20), band(75, 15), band(50, 10)},
				Slope: 0.2,
			},
			{
				Name: "audience", Metric: "attendees", MaxPoints: 10,
				Bands: []signal.Band{band(50, 10), band(20, 7), band(10, 5)},
				Slope: 0.5,
			},
			{
				Name: "pricePoint", Metric: "ticketPrice", MaxPoints: 10,
				Bands: []signal.Band{band(150, 10), band(75, 7), band(30, 4)},
				Slope: 0.13,
			},
		},
	},
	Tiers: tier.Scale{
		{
			Min: 75, Name: "strong", Label: "Strong ROI",
			ValueRange: "${revenue} projected revenue",
			Lines: []string{
				"You scored {score}/100: this workshop clearly pays for itself.",
				"At ${hourlyReturn}/hour of effort, it outperforms most one-off creator work.",
			},
			Reassurance: "These numbers support running it as a recurring event, not a one-off.",
			Recommendations: []string{
				"Record the session and sell the replay to non-attendees.",
				"Schedule the next run before this one ends to capture momentum.",
				"Raise the price 10-20% each run until conversion dips.",
			},
		},
		{
			Min: 55, Name: "viable", Label: "Viable",
			ValueRange: "${revenue} projected revenue",
			Lines: []string{
				"You scored {score}/100: worth running, with room to tune.",
				"Margin at {marginPercent}% is healthy; the constraint is scale or price.",
			},
			Reassurance: "A viable first workshop is exactly what repeat events are built from.",
			Recommendations: []string{
				"Trim prep hours by reusing existing content as the backbone.",
				"Test a higher ticket price with an early-bird discount.",
				"Add a low-cost upsell such as a template pack.",
			},
		},
		{
			Min: 35, Name: "marginal", Label: "Marginal",
			ValueRange: "${revenue} projected revenue",
			Lines: []string{
				"You scored {score}/100: it runs a profit, but a thin one for the hours.",
				"An effective rate of ${hourlyReturn}/hour undervalues your time.",
			},
			Reassurance: "Marginal on paper often improves sharply with one variable changed.",
			Recommendations: []string{
				"Cut prep scope; deliver one transformation, not a curriculum.",
				"Grow attendance before growing production quality.",
				"Consider a shorter, higher-priced format.",
			},
		},
		{
			Min: 0, Name: "rethink", Label: "Rethink the Format",
			ValueRange: "Below break-even risk",
			Lines: []string{
				"You scored {score}/100: as planned, the effort outweighs the return.",
				"The inputs suggest the format, not the idea, is the problem.",
			},
			Reassurance: "A low score here saves you from an exhausting launch. That is the tool working.",
			Recommendations: []string{
				"Halve the prep hours or double the ticket price before committing.",
				"Validate demand with a free 45-minute teaser session.",
				"Fold the material into an async product with no fixed delivery cost.",
			},
		},
	},
}
