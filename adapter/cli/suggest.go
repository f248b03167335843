package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotdown-app/jotdown/internal/suggest/tags"
)

var suggestText string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Score a memo text and print tag candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("suggest requires an initialized lexicon store.")
			return nil
		}

		engine := tags.NewEngine()
		candidates := engine.Score(tags.Input{
			Text:    suggestText,
			Ranked:  app.Store.Rank(cmd.Context()),
			Presets: app.Store.PresetTags(),
			Policy:  tags.ParsePolicy(app.Config.TagPolicy),
		})

		if len(candidates) == 0 {
			fmt.Println("no tag candidates")
			return nil
		}
		for i, tag := range candidates {
			fmt.Printf("%d. %s (used %d times)\n", i+1, tag.Name, tag.UsageCount)
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestText, "text", "t", "", "memo text to score (required)")
	_ = suggestCmd.MarkFlagRequired("text")
}
