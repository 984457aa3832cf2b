package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
)

var mirrorDryRun bool

var mirrorCmd = &cobra.Command{
	Use:   "mirror <display> <reference>",
	Short: "Show the same content on two displays",
	Long: `Place <display> at the position of <reference> and switch both to the
best resolution they share. Each display keeps its own refresh rate.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeDisplays(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := distinct(args[0], args[1]); err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			moved, err := s.Head(args[0])
			if err != nil {
				return err
			}
			ref, err := s.Head(args[1])
			if err != nil {
				return err
			}
			for _, h := range []output.Head{moved, ref} {
				if _, ok := h.CurrentMode(); !ok {
					return fmt.Errorf("%s: %w", h.Name, output.ErrNoCurrentMode)
				}
			}
			if ref.Position == nil {
				return fmt.Errorf("%s: %w", ref.Name, output.ErrNoPosition)
			}

			movedMode, refMode, err := output.MirrorModes(moved, ref)
			if err != nil {
				return err
			}

			return transaction{
				directives: []output.Directive{
					output.Enable(moved, output.WithPosition(*ref.Position), output.WithMode(movedMode)),
					output.Enable(ref, output.WithMode(refMode)),
				},
				success: fmt.Sprintf("Mirrored display %s(%s) same-as %s(%s).\n\nUsing %s and %s as best common resolution.",
					moved.Name, movedMode, ref.Name, refMode, movedMode, refMode),
				failure: fmt.Sprintf("Unable to mirror display %s same-as %s", moved.Name, ref.Name),
				dryRun:  mirrorDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

func init() {
	addDryRunFlag(mirrorCmd, &mirrorDryRun)
	rootCmd.AddCommand(mirrorCmd)
}
