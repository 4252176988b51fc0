package llm

import "errors"

var (
	// ErrProviderUnavailable indicates the API credential is missing, the
	// client could not be constructed, or the provider is disabled.
	ErrProviderUnavailable = errors.New("generative provider unavailable")

	// ErrRequestFailed indicates the API call itself failed.
	ErrRequestFailed = errors.New("generative api request failed")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the API returned no text.
	ErrEmptyResponse = errors.New("generative api returned no text")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
