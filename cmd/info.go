package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/session"
	"github.com/bnema/wlout/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info <display>",
	Short: "Show details of a display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.HeadDetail(h))
			return err
		})
	},
	ValidArgsFunction: completeDisplays(1),
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
