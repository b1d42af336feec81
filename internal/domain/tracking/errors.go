package tracking

import "errors"

var (
	ErrWorkSessionNotFound = errors.New("work session not found")
	ErrInvalidCount        = errors.New("image count must be non-negative")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
)
