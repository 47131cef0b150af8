package llm

import "errors"

// Sentinel error kinds for this package.
var (
	ErrClientInit    = errors.New("llm client init failed")
	ErrGenerate      = errors.New("llm generate failed")
	ErrEmptyResponse = errors.New("llm returned no text")
)
