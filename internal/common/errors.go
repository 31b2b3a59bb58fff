package common

import "errors"

// Business logic errors
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Validation errors
	ErrMissingRequiredFields = errors.New("headline, text_content and start_year are required")
	ErrInvalidEventID        = errors.New("invalid event id")
)
