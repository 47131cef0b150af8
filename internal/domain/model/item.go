// Package model contains domain models passed between layers.
package model

import "time"

// ContentItem is one published video pulled from the catalog.
// Immutable once collected; lives for a single request.
type ContentItem struct {
	ID              string    // catalog video id
	Title           string    // item title
	Description     string    // item description, may be empty
	PublishedAt     time.Time // publish timestamp
	DurationMinutes float64   // normalized from the catalog duration token
	ViewCount       int64     // lifetime views
	CommentCount    int64     // lifetime comments
}

// Channel is the catalog metadata resolved for an authority evaluation.
type Channel struct {
	ID          string
	Title       string
	Subscribers int64
	VideoCount  int64
}
