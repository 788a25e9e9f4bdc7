package stats

import "errors"

var (
	ErrDataUnavailable = errors.New("task data unavailable")
	ErrMissingUser     = errors.New("user is required")
	ErrInvalidLimit    = errors.New("upcoming limit out of range")
)
