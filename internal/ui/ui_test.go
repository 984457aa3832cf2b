package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wlout/internal/output"
)

func sampleHead() output.Head {
	return output.Head{
		ID:           0xff000000,
		Name:         "eDP-1",
		Make:         "BOE",
		Enabled:      true,
		Position:     &output.Position{X: -1420, Y: 300},
		PhysicalSize: &output.Size{Width: 300, Height: 190},
		Scale:        1.5,
		Modes: []output.Mode{
			{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true},
			{Width: 1280, Height: 720, Refresh: 59940},
		},
	}
}

func TestHeadsTable(t *testing.T) {
	out := HeadsTable([]output.Head{sampleHead(), {Name: "HDMI-A-1", Scale: 1}})

	for _, want := range []string{"NAME", "eDP-1", "BOE", "300x190 mm", "(-1420,300)", "1920x1080@60", "1.5", "normal", "HDMI-A-1", "N/A"} {
		assert.Contains(t, out, want)
	}
}

func TestHeadDetail(t *testing.T) {
	out := HeadDetail(sampleHead())
	for _, want := range []string{"Description", "N/A", "Preferred mode", "1920x1080@60", "Adaptive sync", "disabled"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatMode(t *testing.T) {
	modes := sampleHead().Modes
	assert.Contains(t, FormatMode(modes[0]), "1920x1080@60(preferred,current)")
	assert.Equal(t, "1280x720@59", FormatMode(modes[1]))
	assert.Contains(t, FormatMode(output.Mode{Width: 800, Height: 600, Refresh: 60000, Current: true}), "800x600@60(current)")

	lines := strings.Split(ModeList(modes), "\n")
	assert.Len(t, lines, 2)
}

func TestLineConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		c := LineConfirmer{In: strings.NewReader(tt.input), Out: &out}
		got, err := c.Confirm("Proceed ? (Y/n)")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Proceed ? (Y/n)")
	}
}

func TestNewConfirmer(t *testing.T) {
	c := NewConfirmer(strings.NewReader("y\n"), &bytes.Buffer{})
	assert.IsType(t, LineConfirmer{}, c)

	ok, err := AssumeYes{}.Confirm("anything")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("Set mode"), "Set mode")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatError("boom"), "boom")
	assert.Contains(t, FormatEnabled(true), "yes")
	assert.Contains(t, FormatEnabled(false), "no")
}
