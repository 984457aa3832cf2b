package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/wlout/internal/output"
)

const notAvailable = "N/A"

// HeadsTable renders the detailed head listing.
func HeadsTable(heads []output.Head) string {
	rows := make([][]string, 0, len(heads))
	for _, h := range heads {
		rows = append(rows, []string{
			h.Name,
			FormatEnabled(h.Enabled),
			orNA(h.Make),
			orNA(h.Model),
			physicalSize(h),
			position(h),
			currentMode(h),
			fmt.Sprintf("%g", h.Scale),
			h.Transform.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle.Padding(0, 1)
			case col == 0: // Name column
				return InfoStyle.Bold(true).Padding(0, 1)
			default:
				return TextStyle.Padding(0, 1)
			}
		}).
		Headers("NAME", "ENABLED", "MAKE", "MODEL", "PHYSICAL SIZE", "POSITION", "MODE", "SCALE", "TRANSFORM").
		Rows(rows...)

	return t.String()
}

// HeadDetail renders every known property of one head.
func HeadDetail(h output.Head) string {
	fields := [][2]string{
		{"Name", h.Name},
		{"Description", orNA(h.Description)},
		{"Enabled", FormatEnabled(h.Enabled)},
		{"Make", orNA(h.Make)},
		{"Model", orNA(h.Model)},
		{"Serial", orNA(h.SerialNumber)},
		{"Physical size", physicalSize(h)},
		{"Position", position(h)},
		{"Current mode", currentMode(h)},
		{"Preferred mode", preferredMode(h)},
		{"Modes", fmt.Sprintf("%d", len(h.Modes))},
		{"Scale", fmt.Sprintf("%g", h.Scale)},
		{"Transform", h.Transform.String()},
		{"Adaptive sync", h.AdaptiveSync.String()},
	}

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return HeaderStyle.Padding(0, 1)
			}
			return TextStyle.Padding(0, 1)
		}).
		Rows(rows...)

	return t.String()
}

// FormatMode renders a mode with its preferred/current annotations, as in
// 1920x1080@60(preferred,current).
func FormatMode(m output.Mode) string {
	var tags []string
	if m.Preferred {
		tags = append(tags, "preferred")
	}
	if m.Current {
		tags = append(tags, "current")
	}
	if len(tags) == 0 {
		return m.String()
	}

	style := PreferredModeStyle
	if m.Current {
		style = CurrentModeStyle
	}
	return style.Render(m.String() + "(" + strings.Join(tags, ",") + ")")
}

// ModeList renders modes one per line.
func ModeList(modes []output.Mode) string {
	lines := make([]string, 0, len(modes))
	for _, m := range modes {
		lines = append(lines, FormatMode(m))
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func physicalSize(h output.Head) string {
	if h.PhysicalSize == nil {
		return notAvailable
	}
	return h.PhysicalSize.String() + " mm"
}

func position(h output.Head) string {
	if h.Position == nil {
		return notAvailable
	}
	return h.Position.String()
}

func currentMode(h output.Head) string {
	if m, ok := h.CurrentMode(); ok {
		return m.String()
	}
	return notAvailable
}

func preferredMode(h output.Head) string {
	if m, ok := h.PreferredMode(); ok {
		return m.String()
	}
	return notAvailable
}
