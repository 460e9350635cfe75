package ai

import "net/http"

const (
	anthropicAPIBaseURL = "https://api.anthropic.com/v1"
	anthropicAPIVersion = "2023-06-01"
)

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var anthropicFamily = family{
	baseURL: anthropicAPIBaseURL,
	endpoint: func(baseURL, _, _ string) string {
		return baseURL + "/messages"
	},
	authorize: func(h http.Header, credential string) {
		h.Set("x-api-key", credential)
		h.Set("anthropic-version", anthropicAPIVersion)
	},
	payload: func(prompt, model string) any {
		return anthropicRequest{
			Model: model,
			Messages: []anthropicMessage{
				{Role: "user", Content: prompt},
			},
			MaxTokens:   4096,
			Temperature: 0.9,
		}
	},
	textPath: "content.0.text",
}
