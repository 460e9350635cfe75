package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"infoslide/src"
	"infoslide/src/guide"
	"infoslide/src/kv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the visualization training guide",
	Run: func(cmd *cobra.Command, args []string) {
		yellow := src.Yellow()

		src.PrintHighlight("--- Visualization training stages ---")
		for _, stage := range guide.Stages() {
			fmt.Println(yellow.Sprint(stage.Name))
			for _, step := range stage.Steps {
				fmt.Printf("  - %s\n", step)
			}
		}

		fmt.Println()
		src.PrintHighlight("--- Practice tips ---")
		for i, tip := range guide.Tips() {
			fmt.Printf("  %d. %s\n", i+1, tip)
		}

		fmt.Println()
		src.PrintHighlight("--- Progress checks ---")
		for _, check := range guide.ProgressChecks() {
			fmt.Printf("  [ ] %s\n", check)
		}

		fmt.Println()
		src.PrintInfo("Record your practice with 'infoslide guide note add'.")
	},
}

var noteCmd = &cobra.Command{
	Use:     "note",
	Short:   "Manage your visualization training notes",
	Aliases: []string{"notes"},
}

var (
	noteDate  string
	noteStage string
)

var noteAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Write a training note",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, ok := openNotebook()
		if !ok {
			return
		}

		date, err := parseNoteDate(noteDate)
		if err != nil {
			src.PrintError("%v", err)
			return
		}

		stage := noteStage
		if stage == "" {
			stage, err = selectStage()
			if err != nil {
				if errors.Is(err, errCancelled) {
					src.PrintInfo("Note cancelled.")
				}
				return
			}
		}

		content := ""
		if len(args) == 1 {
			content = args[0]
		} else {
			prompt := promptui.Prompt{Label: "What did you practise today"}
			content, err = prompt.Run()
			if err != nil {
				src.PrintInfo("Note cancelled.")
				return
			}
		}

		note, err := nb.Add(date, stage, content)
		if err != nil {
			if errors.Is(err, guide.ErrEmptyNote) {
				src.PrintWarning("Please enter some content for the note.")
				return
			}
			src.PrintError("Failed to save the note: %v", err)
			return
		}
		src.PrintSuccess("Saved note for %s", note.Label())
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List your training notes, newest first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		nb, ok := openNotebook()
		if !ok {
			return
		}

		var notes []guide.Note
		var err error
		if noteDate != "" {
			date, perr := parseNoteDate(noteDate)
			if perr != nil {
				src.PrintError("%v", perr)
				return
			}
			notes, err = nb.OnDate(date)
		} else {
			notes, err = nb.All()
		}
		if err != nil {
			src.PrintError("Failed to read notes: %v", err)
			return
		}

		if len(notes) == 0 {
			src.PrintInfo("No notes yet.")
			return
		}

		yellow := src.Yellow()
		for _, n := range notes {
			fmt.Printf("%s  (%s)\n", yellow.Sprint(n.Label()), n.ID)
			for _, line := range strings.Split(n.Content, "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	},
}

var noteRmCmd = &cobra.Command{
	Use:     "rm [id]",
	Short:   "Delete a training note",
	Aliases: []string{"delete"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, ok := openNotebook()
		if !ok {
			return
		}

		id := ""
		if len(args) == 1 {
			id = args[0]
		} else {
			notes, err := nb.All()
			if err != nil {
				src.PrintError("Failed to read notes: %v", err)
				return
			}
			if len(notes) == 0 {
				src.PrintInfo("No notes to delete.")
				return
			}

			labels := make([]string, len(notes))
			for i, n := range notes {
				labels[i] = n.Label() + ": " + snippet(n.Content, 40)
			}
			prompt := promptui.Select{
				Label:     "Select a note to delete",
				Items:     labels,
				Templates: selectTemplates,
			}
			i, _, err := prompt.Run()
			if err != nil {
				src.PrintInfo("Nothing deleted.")
				return
			}
			id = notes[i].ID
		}

		if err := nb.Delete(id); err != nil {
			if errors.Is(err, guide.ErrNoteNotFound) {
				src.PrintWarning("No note with id '%s'.", id)
				return
			}
			src.PrintError("Failed to delete the note: %v", err)
			return
		}
		src.PrintSuccess("Note deleted.")
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every training note",
	Run: func(cmd *cobra.Command, args []string) {
		nb, ok := openNotebook()
		if !ok {
			return
		}
		if !confirm("Delete all notes") {
			src.PrintInfo("Nothing deleted.")
			return
		}
		if err := nb.Clear(); err != nil {
			src.PrintError("Failed to clear notes: %v", err)
			return
		}
		src.PrintSuccess("All notes deleted.")
	},
}

func openNotebook() (*guide.Notebook, bool) {
	cfg, _, err := loadConfig()
	if err != nil {
		src.PrintError("Error loading configuration: %v", err)
		return nil, false
	}
	store, err := kv.OpenFile(cfg.Notes.Path)
	if err != nil {
		src.PrintError("Failed to open notes: %v", err)
		return nil, false
	}
	return guide.NewNotebook(store), true
}

func parseNoteDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", value)
	}
	return date, nil
}

func selectStage() (string, error) {
	stages := guide.Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	prompt := promptui.Select{
		Label:     "Which stage did you practise",
		Items:     names,
		Templates: selectTemplates,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return name, nil
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteRmCmd, noteClearCmd)

	noteAddCmd.Flags().StringVar(&noteDate, "date", "", "date of the note (YYYY-MM-DD, default today)")
	noteAddCmd.Flags().StringVar(&noteStage, "stage", "", "training stage name")
	noteListCmd.Flags().StringVar(&noteDate, "date", "", "only show notes from this date (YYYY-MM-DD)")
}
