package infographic_test

import (
	"testing"

	"infoslide/src/infographic"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTML(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tagged fence without whitespace",
			input: "```html<html>...</html>```",
			want:  "<html>...</html>",
		},
		{
			name:  "tagged fence with newlines",
			input: "```html\n<!DOCTYPE html>\n<html><body>x</body></html>\n```\n",
			want:  "<!DOCTYPE html>\n<html><body>x</body></html>",
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```html   \n\t<div>hi</div>   \n```   \n\n",
			want:  "<div>hi</div>",
		},
		{
			name:  "bare fence",
			input: "```\n<html></html>\n```",
			want:  "<html></html>",
		},
		{
			name:  "uppercase tag",
			input: "```HTML\n<html></html>\n```",
			want:  "<html></html>",
		},
		{
			name:  "prose before the fence is kept",
			input: "Here is the slide:\n```html\n<html></html>\n```",
			want:  "Here is the slide:\n<html></html>",
		},
		{
			name:  "already clean",
			input: "<html><body><pre>a ``` b</pre></body></html>",
			want:  "<html><body><pre>a ``` b</pre></body></html>",
		},
		{
			name:  "stray extra closing fence",
			input: "```html\n<html></html>\n```\n```",
			want:  "<html></html>",
		},
		{
			name:  "doubled opening fence",
			input: "``````\n<html></html>",
			want:  "<html></html>",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := infographic.CleanHTML(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, infographic.CleanHTML(got), "cleaning must be idempotent")
		})
	}
}

func TestNewInfographicHTMLKeepsRawText(t *testing.T) {
	raw := "```html\n<html></html>\n```"
	out := infographic.NewInfographicHTML(raw)
	assert.Equal(t, raw, out.RawText)
	assert.Equal(t, infographic.CleanHTML(raw), out.CleanedHTML)
}
