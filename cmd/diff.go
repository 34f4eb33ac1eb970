package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/ui"
)

var diffCmd = &cobra.Command{
	Use:   "diff [packages...]",
	Short: "Show local changes against the server state",
	Long: `Compare the local working copies of the requested packages against
the server's canonical state and print the typed change records.`,
	Run: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) {
	s, err := newSetup()
	if err != nil {
		exitWithError(err.Error())
	}

	eng := engine.New(s.fetcher, engine.WithLogger(s.log))
	diffs, err := eng.Diff(context.Background(), s.request(args), s.baseDir)
	if err != nil {
		exitWithError(err.Error())
	}

	if len(diffs) == 0 {
		fmt.Println()
		fmt.Println(ui.Render(ui.Muted, "  Everything in sync. No changes found."))
		fmt.Println()
		return
	}

	fmt.Println()
	fmt.Println(ui.Render(ui.Title, fmt.Sprintf("  %d change(s) found", len(diffs))))
	fmt.Println("  " + ui.Divider(40))
	fmt.Println()
	for _, d := range diffs {
		printDiff(d)
	}
	fmt.Println()
}

func printDiff(d artefact.Diff) {
	fmt.Printf("  %s %s  %s  %s\n",
		ui.TypeBadge(d.ArtefactType),
		ui.Render(ui.Highlight, d.ArtefactName),
		ui.DiffTag(d.Type),
		ui.Render(ui.Muted, d.Path),
	)
	if summary := payloadSummary(d.Payload); summary != "" {
		fmt.Printf("      %s\n", ui.Render(ui.Muted, summary))
	}
}

func payloadSummary(p artefact.Payload) string {
	const width = 60
	switch v := p.(type) {
	case artefact.ValueChange:
		return fmt.Sprintf("%s → %s", ui.Truncate(v.OldValue, width), ui.Truncate(v.NewValue, width))
	case artefact.RuleChange:
		return ui.Truncate(v.Item, 2*width)
	case artefact.RuleUpdate:
		return fmt.Sprintf("%s → %s", ui.Truncate(v.OldValue, width), ui.Truncate(v.NewValue, width))
	case artefact.FileChange:
		if v.IsBase64 {
			return fmt.Sprintf("binary, %d bytes encoded", len(v.Content))
		}
		return fmt.Sprintf("%d bytes", len(v.Content))
	default:
		return ""
	}
}
