package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// debug enables verbose logging across the application.
var debug bool

// configPath points at a single configuration file, bypassing the layered
// lookup of defaults, user and project configuration.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "A dashboard of text, color, CSS and developer utilities",
	Long: `toolbox is a catalogue of small utilities (case conversion, color palettes,
CSS generators, unit converters, hashing, QR codes and more) backed by a
remote tool service.

Browse and run them in the interactive dashboard, run a single tool from
the command line, or expose the whole catalogue to AI assistants over MCP.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed requests)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "toolbox version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newMCPCmd())

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: layered ~/.config/toolbox and ./.toolbox)")
}
