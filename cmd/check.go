package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/reconcile"
	"github.com/packvault/packvault/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages...]",
	Short: "Check which local changes already have proposals",
	Long: `Diff the requested packages, then ask the server which of the
resulting change proposals already exist. Results are printed in diff
order.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
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
		fmt.Println(ui.Render(ui.Muted, "  Everything in sync. Nothing to check."))
		fmt.Println()
		return
	}

	checked, err := reconcile.Check(context.Background(), s.client, diffs)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	for _, item := range checked {
		status := ui.WarningLine("pending")
		if item.Exists {
			when := ""
			if item.CreatedAt != nil {
				when = " (" + item.CreatedAt.Format("2006-01-02") + ")"
			}
			status = ui.SuccessLine("exists" + when)
		}
		fmt.Printf("  %s %s  %s %s\n",
			ui.TypeBadge(item.Diff.ArtefactType),
			ui.Render(ui.Highlight, item.Diff.ArtefactName),
			ui.DiffTag(item.Diff.Type),
			status,
		)
		if item.Message != "" {
			fmt.Printf("      %s\n", ui.Render(ui.Muted, item.Message))
		}
	}
	fmt.Println()
}
