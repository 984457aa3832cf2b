package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
)

var (
	powerForce  bool
	powerDryRun bool
)

var powerCmd = &cobra.Command{
	Use:   "power <display> on|off",
	Short: "Turn a display on or off",
	Long: `Enable or disable a display. Turning off the last enabled display asks
for confirmation unless --force is given.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completePower,
	RunE: func(cmd *cobra.Command, args []string) error {
		var on bool
		switch strings.ToLower(args[1]) {
		case "on":
			on = true
		case "off":
		default:
			return fmt.Errorf("invalid power state %q, expected on or off", args[1])
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}

			if on {
				var opts []output.DirectiveOption
				// A head coming back from off has no current mode.
				if _, ok := h.CurrentMode(); !ok {
					if m, ok := h.PreferredMode(); ok {
						opts = append(opts, output.WithMode(m))
					}
				}
				return transaction{
					directives: []output.Directive{output.Enable(h, opts...)},
					success:    "Successfully enabled display " + h.Name,
					failure:    "Failed to enable display " + h.Name,
					dryRun:     powerDryRun,
				}.run(ctx, cmd, s)
			}

			if h.Enabled && s.EnabledCount() < 2 {
				if err := confirm(cmd, "You are about to power off your last display. Proceed?", powerForce); err != nil {
					return err
				}
			}
			return transaction{
				directives: []output.Directive{output.Disable(h)},
				success:    "Successfully disabled display " + h.Name,
				failure:    "Failed to disable display " + h.Name,
				dryRun:     powerDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

func init() {
	powerCmd.Flags().BoolVarP(&powerForce, "force", "f", false, "power off the last display without asking")
	addDryRunFlag(powerCmd, &powerDryRun)
	rootCmd.AddCommand(powerCmd)
}
