package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"infoslide/src/ai"
	"infoslide/src/infographic"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

var errCancelled = errors.New("operation cancelled by user")

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   `{{ "›" | green | bold }} {{ . | green | bold }}`,
	Inactive: "  {{ . | faint }}",
	Selected: `{{ "✔" | green | bold }} {{ . | yellow }}`,
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return errCancelled
	}
	return err
}

func selectProvider(current ai.Provider) (ai.Provider, error) {
	providers := ai.Providers()
	names := make([]string, len(providers))
	cursor := 0
	for i, p := range providers {
		names[i] = p.String()
		if p == current {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Select an AI provider",
		Items:     names,
		CursorPos: cursor,
		Templates: selectTemplates,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, promptErr(err)
	}
	return providers[i], nil
}

func selectModel(p ai.Provider, current string) (string, error) {
	models := ai.Models(p)
	names := make([]string, len(models))
	cursor := 0
	for i, m := range models {
		names[i] = m.DisplayName + " (" + m.ModelName + ")"
		if m.ModelName == current {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Select a " + p.String() + " model",
		Items:     names,
		CursorPos: cursor,
		Templates: selectTemplates,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return models[i].ModelName, nil
}

func promptCredential(p ai.Provider) (string, error) {
	prompt := promptui.Prompt{
		Label: "Enter your " + p.String() + " API key",
		Mask:  '*',
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("the API key cannot be empty")
			}
			return nil
		},
	}
	key, err := prompt.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return strings.TrimSpace(key), nil
}

const customTextChoice = "Enter my own text"

// chooseSource offers free text or one of the bundled examples.
func chooseSource() (string, error) {
	examples, err := infographic.Examples()
	if err != nil {
		return "", err
	}

	items := []string{customTextChoice}
	for _, ex := range examples {
		items = append(items, "Example: "+ex.Title)
	}

	prompt := promptui.Select{
		Label:     "What should the infographic be about?",
		Items:     items,
		Templates: selectTemplates,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", promptErr(err)
	}
	if i > 0 {
		return examples[i-1].Text, nil
	}

	fmt.Println("Paste or type the content, then press Ctrl+D on an empty line:")
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}
