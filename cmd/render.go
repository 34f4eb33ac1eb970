package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/packvault/packvault/internal/manifest"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Re-render a standard file into another dialect",
	Long: `Parse a local standard file and print it re-rendered into the
requested dialect. Useful for inspecting how the same standard looks
across agent targets.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

var renderDialect string

func init() {
	renderCmd.Flags().StringVar(&renderDialect, "dialect", string(manifest.DialectPlain),
		"Target dialect (plain, claude, cursor, continue, copilot)")
}

func runRender(cmd *cobra.Command, args []string) {
	content, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(err.Error())
	}

	std := manifest.ParseStandard(args[0], string(content))
	if std == nil {
		exitWithError(fmt.Sprintf("%s is not a parseable standard", args[0]))
	}

	rendered, err := manifest.RenderStandard(std, manifest.Dialect(renderDialect))
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Print(rendered)
}
