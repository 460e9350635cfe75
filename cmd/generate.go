package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"infoslide/src"
	"infoslide/src/ai"
	"infoslide/src/infographic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const tokenWarningThreshold = 4000

const charsPerToken = 4

var (
	genAPIKey  string
	genText    string
	genFile    string
	genExample string
	genNoWrite bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Turn a text into an HTML infographic",
	Aliases: []string{"gen", "g"},
	Long: `Run the two-stage pipeline: the chosen model first analyses and structures the
content, then renders the structure as a single 1200x900 HTML slide.

Values not given as flags or in the configuration are prompted for.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd); err != nil {
			if errors.Is(err, errCancelled) {
				src.PrintInfo("Generation cancelled.")
				return
			}
			os.Exit(1)
		}
	},
}

func runGenerate(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		src.PrintError("Error loading configuration: %v", err)
		return err
	}
	interactive := isInteractive()

	provider := cfg.DefaultProvider()
	if interactive && !cmd.Flags().Changed("provider") {
		if provider, err = selectProvider(provider); err != nil {
			return err
		}
	}

	model := cfg.ModelFor(provider)
	switch {
	case cmd.Flags().Changed("model"):
		model = cfg.Model
		if !ai.IsKnownModel(provider, model) {
			src.PrintWarning("Model '%s' is not a known %s model; sending it as is.", model, provider)
		}
	case interactive:
		if model, err = selectModel(provider, model); err != nil {
			return err
		}
	}

	credential := strings.TrimSpace(genAPIKey)
	if credential == "" {
		credential = cfg.CredentialFor(provider)
	}
	if credential == "" && interactive {
		if credential, err = promptCredential(provider); err != nil {
			return err
		}
	}

	source, err := resolveSource(interactive)
	if err != nil {
		src.PrintError("%v", err)
		return err
	}

	if err := checkPromptSize(source, interactive); err != nil {
		return err
	}

	extract, err := infographic.ExtractorFor(cfg.ExtractMode)
	if err != nil {
		src.PrintError("%v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	pipeline := infographic.NewPipeline(newRegistry(cfg),
		infographic.WithLogger(logger),
		infographic.WithExtractor(extract),
		infographic.WithObserver(printStage),
	)
	req := infographic.Request{
		SourceText: source,
		Provider:   provider,
		Model:      model,
		Credential: credential,
	}

	for {
		res, err := pipeline.Run(ctx, req)
		if err == nil {
			return finishGenerate(cfg, res)
		}

		reportFailure(res, err)
		if !interactive || errors.Is(err, infographic.ErrMissingInput) || ctx.Err() != nil {
			return err
		}
		if !confirm("Try again") {
			return err
		}
	}
}

func resolveSource(interactive bool) (string, error) {
	switch {
	case genText != "":
		return genText, nil
	case genFile == "-":
		return readAll(os.Stdin)
	case genFile != "":
		data, err := os.ReadFile(genFile)
		if err != nil {
			return "", fmt.Errorf("failed to read '%s': %w", genFile, err)
		}
		return string(data), nil
	case genExample != "":
		ex, err := infographic.ExampleByName(genExample)
		if err != nil {
			return "", err
		}
		return ex.Text, nil
	case interactive:
		return chooseSource()
	default:
		return readAll(os.Stdin)
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

func checkPromptSize(source string, interactive bool) error {
	estimatedTokens := len(infographic.StructuringPrompt(source)) / charsPerToken
	src.PrintInfo("ℹ  Estimated tokens: ~%d", estimatedTokens)

	if estimatedTokens <= tokenWarningThreshold {
		return nil
	}
	src.PrintWarning("Warning: the input is large (~%d tokens). This may result in a long wait or higher costs.", estimatedTokens)
	if interactive && !confirm("Do you want to continue") {
		return errCancelled
	}
	return nil
}

func printStage(s infographic.State) {
	switch s {
	case infographic.StateStructuring:
		src.PrintInfo("[1/2] Analysing and structuring the content...")
	case infographic.StateExtracting:
		src.PrintInfo("      Extracting the structured JSON...")
	case infographic.StateRendering:
		src.PrintInfo("[2/2] Generating the HTML infographic...")
	case infographic.StateDone:
		src.PrintSuccess("✓ Done!")
	}
}

func reportFailure(res *infographic.Result, err error) {
	var upstream *ai.UpstreamCallFailedError
	switch {
	case errors.Is(err, infographic.ErrMissingInput):
		src.PrintWarning("Please provide both the content and an API key to continue.")
	case errors.Is(err, infographic.ErrNoStructuredJSON):
		if res != nil && res.Structure.RawText != "" {
			src.PrintHighlight("--- Stage 1: content analysis ---")
			fmt.Println(res.Structure.RawText)
		}
		src.PrintError("No structured JSON found. Please try again.")
	case errors.As(err, &upstream):
		src.PrintError("An error occurred: %v", upstream)
	case errors.Is(err, context.Canceled):
		src.PrintWarning("Generation interrupted.")
	default:
		src.PrintError("An error occurred: %v", err)
	}
}

func finishGenerate(cfg *src.Config, res *infographic.Result) error {
	yellow := src.Yellow()

	fmt.Println()
	src.PrintHighlight("--- Stage 1: content analysis and structuring ---")
	fmt.Println(res.Structure.RawText)

	fmt.Println()
	src.PrintHighlight("--- Stage 2: HTML infographic ---")
	fmt.Println(res.HTML())

	if summary, err := infographic.Inspect(res.HTML()); err == nil {
		fmt.Println()
		src.PrintHighlight("--- Summary ---")
		title := summary.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Printf("Title:     %s\n", yellow.Sprint(title))
		fmt.Printf("Sections:  %s\n", yellow.Sprint(summary.Sections))
		fmt.Printf("Headings:  %s\n", yellow.Sprint(summary.Headings))
		fmt.Printf("Icons:     %s\n", yellow.Sprint(summary.Icons))
		fmt.Printf("Tailwind:  %s\n", yellow.Sprint(summary.Tailwind))
	}

	if genNoWrite {
		return nil
	}
	if err := infographic.WriteArtifact(cfg.Output, res.HTML()); err != nil {
		src.PrintError("Failed to save the infographic: %v", err)
		return err
	}
	fmt.Println()
	src.PrintSuccess("Saved the infographic to %s", yellow.Sprint(cfg.Output))
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.String("provider", "", "AI provider: anthropic, gemini, openai or groq")
	flags.String("model", "", "model name, e.g. claude-3-5-sonnet-20240620")
	flags.String("out", "", "output file for the generated HTML")
	flags.StringVar(&genAPIKey, "api-key", "", "API key for the chosen provider")
	flags.StringVarP(&genText, "text", "t", "", "content to turn into an infographic")
	flags.StringVarP(&genFile, "file", "f", "", "read the content from a file ('-' for stdin)")
	flags.StringVarP(&genExample, "example", "e", "", "use a bundled example (see 'infoslide examples')")
	flags.BoolVar(&genNoWrite, "no-write", false, "print the HTML without saving it")
	generateCmd.MarkFlagsMutuallyExclusive("text", "file", "example")

	cobra.CheckErr(viper.BindPFlag("provider", flags.Lookup("provider")))
	cobra.CheckErr(viper.BindPFlag("model", flags.Lookup("model")))
	cobra.CheckErr(viper.BindPFlag("output", flags.Lookup("out")))
}
