package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/config"
	"github.com/bnema/wlout/internal/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wlout configuration",
	Long:  `Show, locate or initialize the wlout configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		rows := [][2]string{
			{"config file", config.GetConfigPath()},
			{"logging.log_level", orDefault(cfg.Logging.LogLevel, "$LOG_LEVEL")},
			{"wayland.display", orDefault(cfg.Wayland.Display, "$WAYLAND_DISPLAY")},
			{"apply.renormalize", fmt.Sprint(cfg.Apply.Renormalize)},
			{"prompt.assume_yes", fmt.Sprint(cfg.Prompt.AssumeYes)},
			{"list.verbose", fmt.Sprint(cfg.List.Verbose)},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file with defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		configPath := config.GetConfigPath()
		if _, err := os.Stat(configPath); err == nil && !configForce {
			_, err := fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("Configuration file already exists at: %s (use --force to overwrite)", configPath)))
			return err
		}

		defaults := config.DefaultConfig
		config.Set(&defaults)
		if err := config.Save(); err != nil {
			return err
		}

		_, err := fmt.Fprintln(out, ui.FormatSuccess("Configuration initialized at: "+configPath))
		return err
	},
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Force overwrite existing configuration")

	rootCmd.AddCommand(configCmd)
}
