package cmd

import (
	"context"
	"fmt"

	"toolbox/internal/app"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive tool dashboard",
		Long: `Opens the terminal dashboard.

Pick a category in the sidebar, search with '/', open a tool with enter and
run it with ctrl+s. Results can be copied (ctrl+y) and generated images
downloaded (ctrl+d). Press '?' for all key bindings.

Configuration:
  toolbox loads configuration from .toolbox/config.yaml in the current directory
  or from ~/.config/toolbox/config.yaml. TOOLBOX_BACKEND_URL overrides the
  service address.`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(debug, configPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.RunDashboard(ctx)
}
