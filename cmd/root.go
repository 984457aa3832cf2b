package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/config"
	"github.com/bnema/wlout/internal/logger"
	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
	"github.com/bnema/wlout/internal/ui"
)

// ErrAborted is returned when the user declines a confirmation prompt.
var ErrAborted = errors.New("aborted")

var (
	// Version info set at build time
	Version = "0.1.0-dev"
	Commit  = "unknown"
	Date    = "unknown"

	configPath string
	logLevel   string
	assumeYes  bool

	rootCmd = &cobra.Command{
		Use:   "wlout",
		Short: "wlout - output management for wlroots compositors",
		Long: `wlout lists and configures the outputs of a Wayland compositor
implementing the wlr-output-management protocol (sway, river, Hyprland,
labwc, ...): resolution, refresh rate, position, mirroring and power.

Without a subcommand it lists the connected displays.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runList,
	}
)

// connectSession opens the compositor session used by every command.
var connectSession = func(ctx context.Context) (*session.Session, error) {
	cfg := config.Get()
	return session.Connect(ctx,
		session.WithDisplay(cfg.Wayland.Display),
		session.WithRenormalize(cfg.Apply.Renormalize),
	)
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command; cancelling ctx interrupts any
// wait on the compositor.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wlout/wlout.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
	addListFlags(rootCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	level := config.Get().Logging.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level != "" {
		if err := logger.SetLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// withSession connects to the compositor, runs fn and disconnects.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := connectSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Debug("Failed to close session", "error", err)
		}
	}()
	return fn(ctx, s)
}

// confirm asks question unless force or --yes is set. A refusal yields
// ErrAborted.
func confirm(cmd *cobra.Command, question string, force bool) error {
	if force {
		return nil
	}

	confirmer := ui.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if assumeYes || config.Get().Prompt.AssumeYes {
		confirmer = ui.AssumeYes{}
	}
	ok, err := confirmer.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// transaction describes one configuration submitted by a command.
type transaction struct {
	directives []output.Directive
	success    string
	failure    string
	dryRun     bool
}

func (tx transaction) run(ctx context.Context, cmd *cobra.Command, s *session.Session) error {
	submit := s.Apply
	if tx.dryRun {
		submit = s.Test
	}

	result, err := submit(ctx, tx.directives...)
	if err == nil {
		err = result.Err()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", tx.failure, err)
	}

	msg := tx.success
	if tx.dryRun {
		msg = "Dry run accepted by the compositor: " + msg
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(msg))
	return err
}

// distinct rejects using the same display twice.
func distinct(a, b string) error {
	if a == b {
		return fmt.Errorf("the second display must be different from %s", a)
	}
	return nil
}

func addDryRunFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "dry-run", false, "ask the compositor to validate the change without applying it")
}
