package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeroform/wingpanel/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wingpanel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wingpanel v%s\n", version.Version)
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
