package cmd

import (
	"github.com/spf13/cobra"
)

var wingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Size the upper wing panels along the semispan",
}

func init() {
	rootCmd.AddCommand(wingCmd)
}
