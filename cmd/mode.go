package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
	"github.com/bnema/wlout/internal/ui"
)

var (
	modeForce  bool
	modeDryRun bool
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Inspect and change display modes",
}

var modeListCmd = &cobra.Command{
	Use:               "list <display>",
	Short:             "List the modes of a display, best first",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.ModeList(output.SortModes(h.Modes)))
			return err
		})
	},
}

var modeCurrentCmd = &cobra.Command{
	Use:               "current <display>",
	Short:             "Print the current mode of a display",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			m, ok := h.CurrentMode()
			if !ok {
				return fmt.Errorf("%s: %w", h.Name, output.ErrNoCurrentMode)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.FormatMode(m))
			return err
		})
	},
}

var modePreferredCmd = &cobra.Command{
	Use:               "preferred <display>",
	Short:             "Print the preferred mode of a display",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			m, ok := h.PreferredMode()
			if !ok {
				return fmt.Errorf("%s: %w", h.Name, output.ErrNoPreferredMode)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.FormatMode(m))
			return err
		})
	},
}

var modeAutoCmd = &cobra.Command{
	Use:               "auto <display>",
	Short:             "Switch a display to its preferred mode",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}
			m, ok := h.PreferredMode()
			if !ok {
				return fmt.Errorf("%s: %w", h.Name, output.ErrNoPreferredMode)
			}
			return transaction{
				directives: []output.Directive{output.Enable(h, output.WithMode(m))},
				success:    fmt.Sprintf("Auto set mode %s for display %s", m, h.Name),
				failure:    fmt.Sprintf("Failed to auto set mode %s for display %s", m, h.Name),
				dryRun:     modeDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

var modeSetCmd = &cobra.Command{
	Use:   "set <display> <WIDTHxHEIGHT@RATE>",
	Short: "Set the mode of a display",
	Long: `Set the mode of a display, e.g. "wlout mode set HDMI-A-1 2560x1440@144".

When the display does not advertise the mode, wlout offers to set it as a
custom mode instead. --force skips that confirmation.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeDisplays(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := output.ParseModeSpec(args[1])
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			h, err := s.Head(args[0])
			if err != nil {
				return err
			}

			opt := output.WithCustomMode(spec.Width, spec.Height, spec.Refresh())
			if m, err := spec.Find(h); err == nil {
				opt = output.WithMode(m)
			} else {
				question := fmt.Sprintf("The specified mode %s does not exist for display %s. Set it as custom mode for this display?", spec, h.Name)
				if err := confirm(cmd, question, modeForce); err != nil {
					return err
				}
			}

			return transaction{
				directives: []output.Directive{output.Enable(h, opt)},
				success:    fmt.Sprintf("Set mode %s for display %s", spec, h.Name),
				failure:    fmt.Sprintf("Failed to set mode %s for display %s", spec, h.Name),
				dryRun:     modeDryRun,
			}.run(ctx, cmd, s)
		})
	},
}

func init() {
	modeSetCmd.Flags().BoolVarP(&modeForce, "force", "f", false, "set an unadvertised mode as custom mode without asking")
	addDryRunFlag(modeSetCmd, &modeDryRun)
	addDryRunFlag(modeAutoCmd, &modeDryRun)

	modeCmd.AddCommand(modeListCmd, modeCurrentCmd, modePreferredCmd, modeAutoCmd, modeSetCmd)
	rootCmd.AddCommand(modeCmd)
}
