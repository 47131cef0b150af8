package api

import "errors"

// Sentinel kinds for API errors.
var (
	// ErrBadRequest marks malformed or incomplete request bodies.
	ErrBadRequest = errors.New("bad request")
)
