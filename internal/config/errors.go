package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrLoadConfig      = errors.New("load config failed")
	ErrEmptyAddr       = errors.New("addr must not be empty")
	ErrInvalidPageSize = errors.New("catalog_page_size must be positive")
	ErrInvalidMaxItems = errors.New("catalog_max_items must be positive")
)

func wrapError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLoadConfig, op, err)
}
