package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
)

var moveDryRun bool

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Position displays in the global layout",
	Long: `Position a display at absolute coordinates or next to another display.

The layout is moved back to the origin after every change unless
apply.renormalize is disabled in the configuration.`,
}

var movePositionCmd = &cobra.Command{
	Use:   "position <display> <x> <y>",
	Short: "Move a display to absolute layout coordinates",
	Long: `Move a display to absolute layout coordinates.

Negative coordinates look like flags, put them after --:

  wlout move position HDMI-1 -- -1920 0`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseCoordinate("x", args[1])
		if err != nil {
			return err
		}
		y, err := parseCoordinate("y", args[2])
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			pos := output.Position{X: x, Y: y}
			return transaction{
				directives: []output.Directive{output.Enable(h, output.WithPosition(pos))},
				success:    fmt.Sprintf("Set position for display %s to x: %d y: %d", h.Name, x, y),
				failure:    fmt.Sprintf("Failed to set position for display %s", h.Name),
				dryRun:     moveDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

// newPlacementCmd builds the "move <placement>" subcommand for p.
func newPlacementCmd(p output.Placement) *cobra.Command {
	return &cobra.Command{
		Use:               fmt.Sprintf("%s <display> <reference>", p),
		Short:             fmt.Sprintf("Move a display %s another one", p),
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

				pos, err := output.Place(moved, ref, p)
				if err != nil {
					return err
				}
				return transaction{
					directives: []output.Directive{output.Enable(moved, output.WithPosition(pos))},
					success:    fmt.Sprintf("Moved display %s %s %s", moved.Name, p, ref.Name),
					failure:    fmt.Sprintf("Unable to move display %s %s %s", moved.Name, p, ref.Name),
					dryRun:     moveDryRun,
				}.run(ctx, cmd, s)
			})
		},
	}
}

func parseCoordinate(axis, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s coordinate %q: %w", axis, s, err)
	}
	return int32(v), nil
}

func init() {
	addDryRunFlag(movePositionCmd, &moveDryRun)
	moveCmd.AddCommand(movePositionCmd)

	for _, p := range output.Placements() {
		c := newPlacementCmd(p)
		addDryRunFlag(c, &moveDryRun)
		moveCmd.AddCommand(c)
	}
	rootCmd.AddCommand(moveCmd)
}
