package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wlout %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
