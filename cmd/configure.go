package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
)

var (
	configureScale        float64
	configureTransform    string
	configureAdaptiveSync string
	configureDryRun       bool
)

var configureCmd = &cobra.Command{
	Use:   "configure <display>",
	Short: "Change the scale, transform or adaptive sync of a display",
	Long: `Change the scale, transform or adaptive sync of an enabled display.
Only the properties given as flags are sent to the compositor.

  wlout configure eDP-1 --scale 1.5
  wlout configure HDMI-1 --transform 90 --adaptive-sync on`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, changes, err := configureOptions(cmd)
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			if _, ok := h.CurrentMode(); !ok {
				return fmt.Errorf("%s: %w", h.Name, output.ErrNoCurrentMode)
			}
			return transaction{
				directives: []output.Directive{output.Enable(h, opts...)},
				success:    fmt.Sprintf("Set %s for display %s", changes, h.Name),
				failure:    fmt.Sprintf("Failed to set %s for display %s", changes, h.Name),
				dryRun:     configureDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

// configureOptions turns the flags the user set into directive options
// and a summary of them.
func configureOptions(cmd *cobra.Command) ([]output.DirectiveOption, string, error) {
	var (
		opts    []output.DirectiveOption
		changes []string
	)
	flags := cmd.Flags()

	if flags.Changed("scale") {
		if configureScale <= 0 {
			return nil, "", fmt.Errorf("invalid scale %g, must be positive", configureScale)
		}
		opts = append(opts, output.WithScale(configureScale))
		changes = append(changes, fmt.Sprintf("scale %g", configureScale))
	}
	if flags.Changed("transform") {
		t, err := output.ParseTransform(configureTransform)
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, output.WithTransform(t))
		changes = append(changes, "transform "+t.String())
	}
	if flags.Changed("adaptive-sync") {
		a, err := output.ParseAdaptiveSync(configureAdaptiveSync)
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, output.WithAdaptiveSync(a))
		changes = append(changes, "adaptive sync "+a.String())
	}

	if len(opts) == 0 {
		return nil, "", errors.New("nothing to change, pass --scale, --transform or --adaptive-sync")
	}
	return opts, strings.Join(changes, ", "), nil
}

func init() {
	configureCmd.Flags().Float64Var(&configureScale, "scale", 1, "output scale factor")
	configureCmd.Flags().StringVar(&configureTransform, "transform", "normal", "rotation: normal, 90, 180, 270, flipped, flipped-90, flipped-180 or flipped-270")
	configureCmd.Flags().StringVar(&configureAdaptiveSync, "adaptive-sync", "", "variable refresh rate: on or off")
	addDryRunFlag(configureCmd, &configureDryRun)
	rootCmd.AddCommand(configureCmd)
}
