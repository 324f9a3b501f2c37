package domain

import "errors"

// ============================================================================
// Query Errors
// ============================================================================

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrInvalidYear     = errors.New("year must be an integer")
	ErrMissingCountry  = errors.New("at least one country is required")
)

// ============================================================================
// Catalog Source Errors
// ============================================================================

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnknownSource   = errors.New("unknown catalog source")
)
