package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/config"
	"github.com/aeroform/wingpanel/internal/logging"
	"github.com/aeroform/wingpanel/internal/version"
)

var (
	logLevel string

	// logger is configured in PersistentPreRun and shared by all commands.
	logger *slog.Logger

	// settings carries the environment defaults; flags override them.
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "wingpanel",
	Short: "Stiffened Wing Panel Sizing Tool",
	Long: `wingpanel - post-buckling sizing of stiffened wing panels

A CLI tool for sizing the upper skin panel of a wing box under bending,
accounting for post-buckling behavior of the thin skin: once a skin bay
buckles locally, only a reduced effective width keeps carrying load, and
the skin stiffness degrades past the elastic limit. Cross-section
stiffness and stress depend on each other; the tool resolves the circular
dependency by fixed-point iteration to a converged effective section.

The tool covers:
  - Local buckling of skin bays and stiffener sub-elements
  - Effective-width reduction (Winter and von Kármán laws)
  - Tangent/blended modulus for the column-buckling check
  - Stress recovery over the effective section and allowable checks
  - Full span-station sweeps from externally supplied load cases`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load()
		if err != nil {
			return err
		}
		level := settings.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger = logging.NewLogger(os.Stderr, logging.ParseLevel(level))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  wingpanel v%s - stiffened wing panel sizing\n", version.Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    panel size    converge one panel under a bending moment")
		fmt.Println("    panel stress  stress distribution over a panel section")
		fmt.Println("    panel check   compare a stress level against allowables")
		fmt.Println("    wing run      full span-station sizing sweep")
		fmt.Println()
		fmt.Println("  Use 'wingpanel --help' to see all commands and flags.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
