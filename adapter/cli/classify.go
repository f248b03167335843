package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotdown-app/jotdown/internal/suggest/template"
)

var classifyText string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Decide whether a memo reads as a task or a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("classify requires an initialized container.")
			return nil
		}

		engine := template.NewEngine(app.Analyzer, template.Destinations{
			Task: app.Config.TaskDestination,
			Note: app.Config.NoteDestination,
		})
		suggestion := engine.Classify(cmd.Context(), classifyText)

		if suggestion.IsEmpty() {
			fmt.Println("no classification (text too short or no signal)")
			return nil
		}
		fmt.Printf("type:        %s\n", suggestion.Type)
		fmt.Printf("confidence:  %.3f\n", suggestion.Confidence)
		fmt.Printf("destination: %s\n", suggestion.Destination)
		if suggestion.IsConfident() {
			fmt.Println("confident:   yes")
		} else {
			fmt.Println("confident:   no")
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyText, "text", "t", "", "memo text to classify (required)")
	_ = classifyCmd.MarkFlagRequired("text")
}
