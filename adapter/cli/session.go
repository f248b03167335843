package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotdown-app/jotdown/internal/eventbus"
	"github.com/jotdown-app/jotdown/internal/session"
	"github.com/jotdown-app/jotdown/internal/suggest/tags"
	"github.com/jotdown-app/jotdown/internal/suggest/template"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive suggestion session on stdin",
	Long: `Reads lines from stdin as if they were text-change events and prints
committed suggestions as evaluations settle. An empty line clears the
draft; "adopt <name>" and "dismiss <name>" drive the tag lifecycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("session requires an initialized container.")
			return nil
		}

		// Observe committed suggestions through a local in-process bus.
		bus := eventbus.NewInProcessBus(app.Logger)
		bus.Subscribe(func(event eventbus.Event) {
			switch event.Name {
			case eventbus.EventTagSuggestionsUpdated:
				fmt.Printf(">> tags: %v\n", event.Payload)
			case eventbus.EventTemplateUpdated:
				fmt.Printf(">> template: %+v\n", event.Payload)
			}
		})

		cfg := session.Config{
			TagPolicy:      tags.ParsePolicy(app.Config.TagPolicy),
			TemplatePolicy: template.ParsePolicy(app.Config.TemplatePolicy),
			TagSettle:      app.Config.TagSettle,
			TemplateSettle: app.Config.TemplateSettle,
			Destinations: template.Destinations{
				Task: app.Config.TaskDestination,
				Note: app.Config.NoteDestination,
			},
		}
		sess := session.New(cmd.Context(), cfg, app.Store, app.Analyzer, bus, app.Logger)
		defer sess.Close()

		fmt.Println("type a memo (empty line clears, Ctrl-D quits):")
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "adopt "):
				name := strings.TrimSpace(strings.TrimPrefix(line, "adopt "))
				if err := sess.Adopt(name); err != nil {
					fmt.Printf("adopted %s (persist failed: %v)\n", name, err)
				} else {
					fmt.Printf("adopted %s\n", name)
				}
			case strings.HasPrefix(line, "dismiss "):
				name := strings.TrimSpace(strings.TrimPrefix(line, "dismiss "))
				sess.Dismiss(name)
				fmt.Printf("dismissed %s\n", name)
			default:
				sess.OnTextChanged(line)
				// Let the settle windows elapse so commits print
				// before the next prompt.
				time.Sleep(cfg.TemplateSettle + 50*time.Millisecond)
			}
		}
		return scanner.Err()
	},
}
