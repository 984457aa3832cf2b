package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/wlout/internal/config"
	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
	"github.com/bnema/wlout/internal/ui"
)

// HeadInfo is the JSON form of a display
type HeadInfo struct {
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Make         string     `json:"make,omitempty"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Enabled      bool       `json:"enabled"`
	X            *int32     `json:"x,omitempty"`
	Y            *int32     `json:"y,omitempty"`
	PhysicalSize string     `json:"physical_size,omitempty"`
	Scale        float64    `json:"scale"`
	Transform    string     `json:"transform"`
	AdaptiveSync string     `json:"adaptive_sync"`
	CurrentMode  *ModeInfo  `json:"current_mode,omitempty"`
	Modes        []ModeInfo `json:"modes"`
}

// ModeInfo is the JSON form of a mode
type ModeInfo struct {
	Width     int32 `json:"width"`
	Height    int32 `json:"height"`
	Rate      int32 `json:"rate"`
	Refresh   int32 `json:"refresh_mhz"`
	Preferred bool  `json:"preferred"`
	Current   bool  `json:"current"`
}

var (
	listVerbose bool
	jsonOutput  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List displays",
	Long:  `List the displays known to the compositor. Use --verbose for details or --json for scripts.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addListFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "show details of every display")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
}

func runList(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		heads := s.Heads()
		out := cmd.OutOrStdout()

		switch {
		case jsonOutput:
			infos := make([]HeadInfo, 0, len(heads))
			for _, h := range heads {
				infos = append(infos, headInfo(h))
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(infos)

		case listVerbose || config.Get().List.Verbose:
			_, err := fmt.Fprintln(out, ui.HeadsTable(heads))
			return err

		default:
			names := make([]string, 0, len(heads))
			for _, h := range heads {
				names = append(names, h.Name)
			}
			_, err := fmt.Fprintln(out, strings.Join(names, "\t"))
			return err
		}
	})
}

func headInfo(h output.Head) HeadInfo {
	info := HeadInfo{
		Name:         h.Name,
		Description:  h.Description,
		Make:         h.Make,
		Model:        h.Model,
		SerialNumber: h.SerialNumber,
		Enabled:      h.Enabled,
		Scale:        h.Scale,
		Transform:    h.Transform.String(),
		AdaptiveSync: h.AdaptiveSync.String(),
		Modes:        make([]ModeInfo, 0, len(h.Modes)),
	}
	if h.Position != nil {
		x, y := h.Position.X, h.Position.Y
		info.X, info.Y = &x, &y
	}
	if h.PhysicalSize != nil {
		info.PhysicalSize = h.PhysicalSize.String()
	}
	for _, m := range h.Modes {
		mi := ModeInfo{
			Width:     m.Width,
			Height:    m.Height,
			Rate:      m.Rate(),
			Refresh:   m.Refresh,
			Preferred: m.Preferred,
			Current:   m.Current,
		}
		info.Modes = append(info.Modes, mi)
		if m.Current {
			cur := mi
			info.CurrentMode = &cur
		}
	}
	return info
}
