package infographic

import "errors"

var (
	// ErrNoStructuredJSON is returned when the structuring output has no {...} span.
	// The rendering stage is never invoked in that case.
	ErrNoStructuredJSON = errors.New("no structured JSON found in the analysis output, please try again")

	// ErrMissingInput is returned before any upstream call when required fields are blank.
	ErrMissingInput = errors.New("please provide both the content and an API key to continue")
)
