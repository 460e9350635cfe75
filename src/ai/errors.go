package ai

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProvider   = errors.New("unsupported AI provider")
	ErrMissingCredential = errors.New("API key is required")
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrEmptyResponse     = errors.New("received an empty or invalid response")
)

// UpstreamCallFailedError reports a non-success HTTP status from a provider.
// Body holds the raw response body exactly as received.
type UpstreamCallFailedError struct {
	Provider   Provider
	StatusCode int
	Body       string
}

func (e *UpstreamCallFailedError) Error() string {
	return fmt.Sprintf("%s API call failed. Status code %d: %s", e.Provider, e.StatusCode, e.Body)
}
