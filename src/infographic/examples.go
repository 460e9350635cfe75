package infographic

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed examples.yaml
var examplesYAML []byte

// Example is a bundled source text offered as an alternative to free-text input.
type Example struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

func Examples() ([]Example, error) {
	var examples []Example
	if err := yaml.Unmarshal(examplesYAML, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse bundled examples: %w", err)
	}
	for i := range examples {
		examples[i].Text = strings.TrimSpace(examples[i].Text)
	}
	return examples, nil
}

func ExampleByName(name string) (Example, error) {
	examples, err := Examples()
	if err != nil {
		return Example{}, err
	}
	for _, ex := range examples {
		if strings.EqualFold(ex.Name, name) {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example '%s'", name)
}
