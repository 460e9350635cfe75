package infographic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"infoslide/src/ai"
)

// AdapterSource resolves the adapter for a provider family.
type AdapterSource interface {
	For(p ai.Provider) (ai.Adapter, error)
}

// Pipeline runs Structuring -> Extracting -> Rendering -> Done with at most two
// sequential upstream calls and no retries.
type Pipeline struct {
	adapters AdapterSource
	extract  Extractor
	logger   *slog.Logger
	observe  func(State)
}

type PipelineOption func(*Pipeline)

func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithExtractor(extract Extractor) PipelineOption {
	return func(p *Pipeline) {
		if extract != nil {
			p.extract = extract
		}
	}
}

// WithObserver registers a callback invoked on every state change, e.g. to drive a spinner.
func WithObserver(fn func(State)) PipelineOption {
	return func(p *Pipeline) {
		p.observe = fn
	}
}

func NewPipeline(adapters AdapterSource, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		adapters: adapters,
		extract:  ExtractGreedy,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one generation cycle. The returned Result is never nil; on error
// it holds the failing state and any stage output produced before the failure.
// Adapter errors are returned unwrapped.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{State: StateStructuring}

	if err := req.Validate(); err != nil {
		return p.fail(res), err
	}

	adapter, err := p.adapters.For(req.Provider)
	if err != nil {
		return p.fail(res), err
	}

	log := p.logger.With("provider", req.Provider.Key(), "model", req.Model)

	p.enter(res, StateStructuring)
	start := time.Now()
	structured, err := adapter.Generate(ctx, StructuringPrompt(req.SourceText), req.Credential, req.Model)
	if err != nil {
		log.Warn("structuring call failed", "error", err)
		return p.fail(res), err
	}
	res.Structure.RawText = structured
	log.Debug("structuring call finished", "duration", time.Since(start), "response_len", len(structured))

	p.enter(res, StateExtracting)
	extracted, ok := p.extract(structured)
	if !ok {
		log.Warn("no JSON object in structuring response")
		return p.fail(res), ErrNoStructuredJSON
	}
	res.Structure.ExtractedJSON = extracted
	res.Structure.Found = true

	p.enter(res, StateRendering)
	start = time.Now()
	rendered, err := adapter.Generate(ctx, RenderingPrompt(extracted), req.Credential, req.Model)
	if err != nil {
		log.Warn("rendering call failed", "error", err)
		return p.fail(res), err
	}
	res.Infographic = NewInfographicHTML(rendered)
	if res.Infographic.CleanedHTML == "" {
		log.Warn("rendering response was empty after cleanup")
		return p.fail(res), fmt.Errorf("%s rendering: %w", req.Provider, ai.ErrEmptyResponse)
	}
	log.Debug("rendering call finished", "duration", time.Since(start), "html_len", len(res.Infographic.CleanedHTML))

	p.enter(res, StateDone)
	return res, nil
}

func (p *Pipeline) enter(res *Result, s State) {
	res.State = s
	if p.observe != nil {
		p.observe(s)
	}
}

func (p *Pipeline) fail(res *Result) *Result {
	res.FailedAt = res.State
	p.enter(res, StateFailed)
	return res
}
