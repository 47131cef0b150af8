package catalog

import "errors"

// Sentinel error kinds for this package.
var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrUnavailable     = errors.New("catalog unavailable")
)
