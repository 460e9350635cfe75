package infographic_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"infoslide/src/infographic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptsEmbedInputVerbatim(t *testing.T) {
	source := "Line one with {braces} and <tags>\n\n  indented line two  "
	prompt := infographic.StructuringPrompt(source)
	assert.Contains(t, prompt, "<content>\n"+source+"\n</content>")
	assert.Contains(t, prompt, "4-6 main points")
	assert.Contains(t, prompt, "<thinking>")
	assert.Contains(t, prompt, "JSON")

	structure := `{"title":"x","points":[]}`
	rendering := infographic.RenderingPrompt(structure)
	assert.Contains(t, rendering, "<json>\n"+structure+"\n</json>")
	assert.Contains(t, rendering, "Tailwind CSS")
	assert.Contains(t, rendering, "1200x900")
	assert.Contains(t, rendering, "Lucide")
	assert.Contains(t, rendering, "```html")
}

func TestExamples(t *testing.T) {
	examples, err := infographic.Examples()
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	for _, ex := range examples {
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.Title)
		assert.Equal(t, strings.TrimSpace(ex.Text), ex.Text)
		assert.NotEmpty(t, ex.Text)
	}

	climate, err := infographic.ExampleByName("Climate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(climate.Text, "Climate change causes"))

	_, err = infographic.ExampleByName("missing")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
  <title> Climate at a glance </title>
  <script src="https://cdn.tailwindcss.com"></script>
  <script src="https://unpkg.com/lucide@latest"></script>
</head>
<body class="w-[1200px] h-[900px]">
  <h1>Climate</h1>
  <section><h2>Causes</h2><i data-lucide="flame"></i></section>
  <section><h2>Effects</h2><i data-lucide="waves"></i></section>
  <section><h3>Action</h3></section>
</body>
</html>`

	s, err := infographic.Inspect(html)
	require.NoError(t, err)
	assert.Equal(t, "Climate at a glance", s.Title)
	assert.Equal(t, 4, s.Headings)
	assert.Equal(t, 3, s.Sections)
	assert.Equal(t, 2, s.Icons)
	assert.True(t, s.Tailwind)
}

func TestInspectFallsBackToHeading(t *testing.T) {
	s, err := infographic.Inspect(`<div><h1> Only heading </h1></div>`)
	require.NoError(t, err)
	assert.Equal(t, "Only heading", s.Title)
	assert.False(t, s.Tailwind)
	assert.Zero(t, s.Sections)
}

func TestWriteArtifactOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", infographic.DefaultArtifactName)

	require.NoError(t, infographic.WriteArtifact(path, "<html>first</html>"))
	require.NoError(t, infographic.WriteArtifact(path, "<html>second</html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>second</html>", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}
