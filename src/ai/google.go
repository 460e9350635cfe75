package ai

import (
	"fmt"
	"net/http"
	"net/url"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type googleRESTRequest struct {
	Contents         []googleContent        `json:"contents"`
	GenerationConfig googleGenerationConfig `json:"generationConfig"`
}

type googleContent struct {
	Role  string       `json:"role"`
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopK             int     `json:"topK"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

// The key travels in the query string, so the URL must never be logged.
var geminiFamily = family{
	baseURL: geminiAPIBaseURL,
	endpoint: func(baseURL, model, credential string) string {
		return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
			baseURL, url.PathEscape(model), url.QueryEscape(credential))
	},
	authorize: func(http.Header, string) {},
	payload: func(prompt, _ string) any {
		return googleRESTRequest{
			Contents: []googleContent{
				{
					Role:  "user",
					Parts: []googlePart{{Text: prompt}},
				},
			},
			GenerationConfig: googleGenerationConfig{
				Temperature:      0.9,
				TopK:             64,
				TopP:             0.95,
				MaxOutputTokens:  8192,
				ResponseMimeType: "text/plain",
			},
		}
	},
	textPath: "candidates.0.content.parts.0.text",
}
