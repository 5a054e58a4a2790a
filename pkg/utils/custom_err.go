package utils

import "errors"

var (
	ErrMalformedRequest    = errors.New("malformed request")
	ErrProviderUnavailable = errors.New("generation provider unavailable")
	ErrEmptyGeneration     = errors.New("generation returned no text")
	ErrMissingAPIKey       = errors.New("api key is required")
)
