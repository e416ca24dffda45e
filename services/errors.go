package services

import "errors"

// Common service-level errors
var (
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
