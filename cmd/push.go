package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/reconcile"
	"github.com/packvault/packvault/internal/ui"
)

var pushCmd = &cobra.Command{
	Use:   "push [packages...]",
	Short: "Submit local changes as change proposals",
	Long: `Diff the requested packages and submit the resulting change records
to the server as batched change proposals. Items that cannot be
addressed server-side are skipped with a reason; the rest of the batch
proceeds.`,
	Run: runPush,
}

var pushCaptureMode string

func init() {
	pushCmd.Flags().StringVar(&pushCaptureMode, "capture-mode", "", "Capture mode recorded on submitted proposals")
}

func runPush(cmd *cobra.Command, args []string) {
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
		fmt.Println(ui.Render(ui.Muted, "  Everything in sync. Nothing to push."))
		fmt.Println()
		return
	}

	captureMode := s.cfg.CaptureMode
	if pushCaptureMode != "" {
		captureMode = pushCaptureMode
	}

	summary, err := reconcile.Submit(context.Background(), s.client, diffs, captureMode)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	for _, item := range summary.Items {
		switch item.Status {
		case reconcile.StatusSkipped:
			fmt.Println(ui.WarningLine(fmt.Sprintf("skipped %s: %s", item.Diff.Type, item.Reason)))
		case reconcile.StatusError:
			fmt.Println(ui.ErrorLine(fmt.Sprintf("failed %s: %s", item.Diff.Type, item.Reason)))
		default:
			fmt.Println(ui.SuccessLine(fmt.Sprintf("submitted %s for %s", item.Diff.Type, item.Diff.ArtefactName)))
		}
	}

	fmt.Println()
	fmt.Println("  " + ui.Divider(40))
	fmt.Println(ui.Render(ui.Title, fmt.Sprintf(
		"  %d submitted, %d skipped, %d already submitted, %d failed",
		summary.Submitted, summary.Skipped, summary.AlreadySubmitted, summary.Errors,
	)))
	fmt.Println()
}
