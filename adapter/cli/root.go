package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jotdown",
	Short: "Jotdown suggests tags and a record type for short memos",
	Long: `Jotdown is a note-capture assistant. As a memo is typed it scores the
text against a keyword lexicon to propose tags, and decides whether the
memo reads as an actionable task or a free-form note.`,
	SilenceUsage: true,
}

// Root returns the root command with all subcommands attached.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(sessionCmd)
}
