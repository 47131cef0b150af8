package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownTool means the requested tool name is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrChannelNotFound means the channel reference could not be resolved.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrNoContent means acquisition succeeded but returned zero items.
	ErrNoContent = errors.New("no content found")

	// ErrNotConfigured means the authority tool was called without a
	// catalog client, i.e. no API key was configured.
	ErrNotConfigured = errors.New("catalog not configured")
)
