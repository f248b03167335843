package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and update the user tag lexicon",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List preset and user tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("tags requires an initialized lexicon store.")
			return nil
		}

		fmt.Println("presets:")
		for _, tag := range app.Store.PresetTags() {
			fmt.Printf("  %s\n", tag.Name)
		}
		fmt.Println("user tags:")
		for _, tag := range app.Store.UserTags(cmd.Context()) {
			fmt.Printf("  %s (used %d)\n", tag.Name, tag.UsageCount)
		}
		return nil
	},
}

var tagsRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "List user tags by priority score",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("tags requires an initialized lexicon store.")
			return nil
		}

		for i, tag := range app.Store.Rank(cmd.Context()) {
			fmt.Printf("%d. %s (score %d)\n", i+1, tag.Name, tag.PriorityScore())
		}
		return nil
	},
}

var tagsAdoptCmd = &cobra.Command{
	Use:   "adopt <name>",
	Short: "Record an adoption for the named tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("tags requires an initialized lexicon store.")
			return nil
		}

		if err := app.Store.RecordAdoption(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("record adoption: %w", err)
		}
		fmt.Printf("adopted %s\n", args[0])
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsRankCmd)
	tagsCmd.AddCommand(tagsAdoptCmd)
}
