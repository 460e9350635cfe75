package ai

import (
	"fmt"
	"net/http"
	"strings"
)

// family describes one provider's request envelope and where its reply text lives.
type family struct {
	baseURL   string
	endpoint  func(baseURL, model, credential string) string
	authorize func(h http.Header, credential string)
	payload   func(prompt, model string) any
	textPath  string
}

// families is indexed by Provider; a new Provider constant without an entry
// here leaves a zero family, which NewAdapter rejects.
var families = [numProviders]family{
	Anthropic: anthropicFamily,
	Gemini:    geminiFamily,
	OpenAI:    openAIFamily,
	Groq:      groqFamily,
}

type Option func(*HTTPAdapter)

// WithBaseURL points the adapter at a different host, e.g. a gateway or a test server.
func WithBaseURL(baseURL string) Option {
	return func(a *HTTPAdapter) {
		if baseURL != "" {
			a.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(a *HTTPAdapter) {
		if client != nil {
			a.client = client
		}
	}
}

func NewAdapter(p Provider, opts ...Option) (*HTTPAdapter, error) {
	if !p.Valid() || families[p].endpoint == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}

	a := &HTTPAdapter{
		provider: p,
		family:   families[p],
		client:   &http.Client{},
		baseURL:  families[p].baseURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Registry hands out adapters with shared HTTP settings and per-provider endpoint overrides.
type Registry struct {
	client   *http.Client
	baseURLs map[Provider]string
}

func NewRegistry(client *http.Client, baseURLs map[Provider]string) *Registry {
	return &Registry{client: client, baseURLs: baseURLs}
}

func (r *Registry) For(p Provider) (Adapter, error) {
	opts := []Option{WithHTTPClient(r.client)}
	if u, ok := r.baseURLs[p]; ok {
		opts = append(opts, WithBaseURL(u))
	}
	return NewAdapter(p, opts...)
}
