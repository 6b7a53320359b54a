package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/app"
)

var (
	runSets    []string
	runSaveDir string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <tool-id>",
		Short: "Run a single tool and print its result",
		Long: `Runs one tool with its default inputs, overridden by --set name=value
assignments, and prints the result. Use 'toolbox schema <tool-id>' to see
the field names.

Image results are described on stdout; pass --save <dir> to write them to
<dir>/generated.<ext> instead.

Examples:
  toolbox run case-converter --set text="hello world" --set case_type=title
  toolbox run qr-generator --set text=https://example.com --save .`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}
	cmd.Flags().StringArrayVar(&runSets, "set", nil, "Field assignment name=value (repeatable)")
	cmd.Flags().StringVar(&runSaveDir, "save", "", "Directory to save image results into")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(debug, configPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.RunTool(ctx, cmd.OutOrStdout(), args[0], runSets, runSaveDir)
}
