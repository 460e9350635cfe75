package ai

import "strings"

const groqBaseURL = "https://api.groq.com/openai/v1"

const defaultGroqMaxTokens = 4096

// groqTokenLimits is checked in order; the first substring found in the model id wins.
var groqTokenLimits = []struct {
	marker string
	limit  int
}{
	{"32768", 32768},
	{"32k", 32768},
	{"8192", 8192},
}

// MaxTokensFor returns the output budget requested for a Groq model id.
func MaxTokensFor(model string) int {
	lower := strings.ToLower(model)
	for _, l := range groqTokenLimits {
		if strings.Contains(lower, l.marker) {
			return l.limit
		}
	}
	return defaultGroqMaxTokens
}

// Groq speaks the OpenAI chat envelope, plus an explicit max_tokens.
var groqFamily = family{
	baseURL:   groqBaseURL,
	endpoint:  chatCompletions,
	authorize: bearer,
	payload: func(prompt, model string) any {
		return openAIRequest{
			Model: model,
			Messages: []openAIMessage{
				{Role: "user", Content: prompt},
			},
			Temperature: 0.7,
			MaxTokens:   MaxTokensFor(model),
		}
	},
	textPath: "choices.0.message.content",
}
