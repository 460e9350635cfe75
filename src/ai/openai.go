package ai

import "net/http"

const openAIBaseURL = "https://api.openai.com/v1"

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func bearer(h http.Header, credential string) {
	h.Set("Authorization", "Bearer "+credential)
}

func chatCompletions(baseURL, _, _ string) string {
	return baseURL + "/chat/completions"
}

var openAIFamily = family{
	baseURL:   openAIBaseURL,
	endpoint:  chatCompletions,
	authorize: bearer,
	payload: func(prompt, model string) any {
		return openAIRequest{
			Model: model,
			Messages: []openAIMessage{
				{Role: "user", Content: prompt},
			},
			Temperature: 0.7,
		}
	},
	textPath: "choices.0.message.content",
}
