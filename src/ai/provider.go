package ai

import (
	"context"
	"fmt"
	"strings"
)

// Adapter is the uniform text-completion contract every provider family satisfies.
type Adapter interface {
	Generate(ctx context.Context, prompt, credential, model string) (string, error)
}

// Provider is the closed set of supported provider families.
type Provider int

const (
	Anthropic Provider = iota
	Gemini
	OpenAI
	Groq

	numProviders
)

var providerNames = [numProviders]string{
	Anthropic: "Claude",
	Gemini:    "Gemini",
	OpenAI:    "OpenAI GPT",
	Groq:      "Groq",
}

var providerKeys = [numProviders]string{
	Anthropic: "anthropic",
	Gemini:    "gemini",
	OpenAI:    "openai",
	Groq:      "groq",
}

var providerAliases = map[string]Provider{
	"anthropic":      Anthropic,
	"claude":         Anthropic,
	"gemini":         Gemini,
	"google":         Gemini,
	"googleaistudio": Gemini,
	"openai":         OpenAI,
	"openaigpt":      OpenAI,
	"gpt":            OpenAI,
	"groq":           Groq,
}

// Providers returns every supported provider in display order.
func Providers() []Provider {
	out := make([]Provider, 0, numProviders)
	for p := Provider(0); p < numProviders; p++ {
		out = append(out, p)
	}
	return out
}

func (p Provider) Valid() bool {
	return p >= 0 && p < numProviders
}

// String returns the display name shown in selectors.
func (p Provider) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Provider(%d)", int(p))
	}
	return providerNames[p]
}

// Key returns the lowercase identifier used in config keys and form values.
func (p Provider) Key() string {
	if !p.Valid() {
		return ""
	}
	return providerKeys[p]
}

// ParseProvider resolves a display name, key or alias, ignoring case and spaces.
func ParseProvider(name string) (Provider, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if p, ok := providerAliases[normalized]; ok {
		return p, nil
	}

	names := make([]string, 0, numProviders)
	for _, p := range Providers() {
		names = append(names, p.Key())
	}
	return 0, fmt.Errorf("%w: '%s'. Supported providers are: %s",
		ErrUnknownProvider, name, strings.Join(names, ", "))
}
