package infographic

import (
	"fmt"
	"strings"

	"infoslide/src/ai"
)

// Request is one user submission. It is never modified once built.
type Request struct {
	SourceText string
	Provider   ai.Provider
	Model      string
	Credential string
}

func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.SourceText) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(r.Credential) == "" {
		missing = append(missing, "API key")
	}
	if strings.TrimSpace(r.Model) == "" {
		missing = append(missing, "model")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing: %s)", ErrMissingInput, strings.Join(missing, ", "))
	}
	if !r.Provider.Valid() {
		return fmt.Errorf("%w: %s", ai.ErrUnknownProvider, r.Provider)
	}
	return nil
}

type StructureResult struct {
	RawText       string
	ExtractedJSON string
	Found         bool
}

type InfographicHTML struct {
	RawText     string
	CleanedHTML string
}

func NewInfographicHTML(raw string) InfographicHTML {
	return InfographicHTML{RawText: raw, CleanedHTML: CleanHTML(raw)}
}

type State int

const (
	StateStructuring State = iota
	StateExtracting
	StateRendering
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStructuring:
		return "structuring"
	case StateExtracting:
		return "extracting"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result carries whatever the pipeline produced, including on failure, so the
// caller can still show the structuring output.
type Result struct {
	State       State
	FailedAt    State
	Structure   StructureResult
	Infographic InfographicHTML
}

func (r *Result) HTML() string {
	return r.Infographic.CleanedHTML
}
