package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is replaced at build time via -ldflags.
var Version = "devel"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the minsh version.",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "minsh %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
