// Package types contains response shapes shared between the app and HTTP layers.
package types

// Report is the shaped result every tool evaluation returns.
// Fields mirror the OpenAPI schema for POST /tools/{tool}.
type Report struct {
	Tool            string             `json:"tool"`
	TotalScore      int                `json:"totalScore"`
	Tier            string             `json:"tier"`
	TierLabel       string             `json:"tierLabel"`
	ValueRange      string             `json:"valueRange,omitempty"`
	Breakdown       map[string]int     `json:"breakdown"`
	DerivedMetrics  map[string]float64 `json:"derivedMetrics"`
	SummaryLines    []string           `json:"summaryLines"`
	Reassurance     string             `json:"reassurance"`
	Recommendations []string           `json:"recommendations"`
}

// ChannelInfo is the channel metadata echoed back by the authority tool.
type ChannelInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subscribers int64  `json:"subscribers"`
}

// ClassificationInfo is the topic classification attached to authority reports.
type ClassificationInfo struct {
	PrimaryCategory    string         `json:"primaryCategory"`
	ConsistencyPercent int            `json:"consistencyPercent"`
	Topics             []string       `json:"topics"`
	Complexity         map[string]int `json:"complexity"`
}

// AuthorityReport extends Report with acquisition and classification context.
type AuthorityReport struct {
	Report
	Channel        ChannelInfo        `json:"channel"`
	Classification ClassificationInfo `json:"classification"`
	ItemsAnalyzed  int                `json:"itemsAnalyzed"`
}
