package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wlout/internal/config"
	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/session"
	"github.com/bnema/wlout/internal/session/sessiontest"
)

func laptopAndMonitor() *sessiontest.Compositor {
	return sessiontest.New(
		sessiontest.HeadSpec{
			Name:    "eDP-1",
			Make:    "BOE",
			Model:   "0x0BCA",
			Enabled: true,
			Modes: []sessiontest.ModeSpec{
				{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true},
			},
		},
		sessiontest.HeadSpec{
			Name:    "HDMI-1",
			Enabled: true,
			X:       1920,
			Modes: []sessiontest.ModeSpec{
				{Width: 1920, Height: 1080, Refresh: 60000},
				{Width: 2560, Height: 1440, Refresh: 75000, Preferred: true, Current: true},
			},
		},
	)
}

func laptopOnly() *sessiontest.Compositor {
	return sessiontest.New(sessiontest.HeadSpec{
		Name:    "eDP-1",
		Enabled: true,
		Modes: []sessiontest.ModeSpec{
			{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true},
		},
	})
}

// executeCommand runs the root command against comp and returns what it
// printed. in is fed to confirmation prompts.
func executeCommand(t *testing.T, comp *sessiontest.Compositor, in string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.Reset()

	prev := connectSession
	connectSession = func(ctx context.Context) (*session.Session, error) {
		return session.Connect(ctx,
			session.WithTransport(comp),
			session.WithRenormalize(config.Get().Apply.Renormalize),
		)
	}
	t.Cleanup(func() {
		connectSession = prev
		resetFlags()
		config.Reset()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(in))
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	configPath, logLevel, assumeYes = "", "", false
	listVerbose, jsonOutput = false, false
	modeForce, modeDryRun = false, false
	moveDryRun, mirrorDryRun = false, false
	powerForce, powerDryRun = false, false
	configForce = false
	configureDryRun = false
	// configure only sends the properties whose flags were set.
	configureCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestList(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "eDP-1\tHDMI-1\n", out)
	assert.True(t, comp.Closed())
	assert.Equal(t, 0, comp.Count("create_configuration"))
}

func TestRootListsDisplays(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "")
	require.NoError(t, err)
	assert.Equal(t, "eDP-1\tHDMI-1\n", out)
}

func TestListVerbose(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "", "list", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "HDMI-1")
	assert.Contains(t, out, "2560x1440@75")
	assert.Contains(t, out, "BOE")
}

func TestListJSON(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "", "list", "--json")
	require.NoError(t, err)

	var heads []HeadInfo
	require.NoError(t, json.Unmarshal([]byte(out), &heads))
	require.Len(t, heads, 2)

	assert.Equal(t, "eDP-1", heads[0].Name)
	require.NotNil(t, heads[0].X)
	assert.Equal(t, int32(0), *heads[0].X)

	hdmi := heads[1]
	assert.Equal(t, "HDMI-1", hdmi.Name)
	assert.True(t, hdmi.Enabled)
	require.NotNil(t, hdmi.X)
	assert.Equal(t, int32(1920), *hdmi.X)
	require.NotNil(t, hdmi.CurrentMode)
	assert.Equal(t, int32(2560), hdmi.CurrentMode.Width)
	assert.Equal(t, int32(75), hdmi.CurrentMode.Rate)
	assert.Equal(t, int32(75000), hdmi.CurrentMode.Refresh)
	assert.Len(t, hdmi.Modes, 2)
}

func TestInfo(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "", "info", "eDP-1")
	require.NoError(t, err)
	assert.Contains(t, out, "eDP-1")
	assert.Contains(t, out, "BOE")
	assert.Contains(t, out, "1920x1080@60")
}

func TestInfoUnknownDisplay(t *testing.T) {
	_, err := executeCommand(t, laptopAndMonitor(), "", "info", "DP-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrDisplayNotFound)
	assert.Contains(t, err.Error(), "DP-9")
}

func TestModeQueries(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "", "mode", "current", "HDMI-1")
	require.NoError(t, err)
	assert.Contains(t, out, "2560x1440@75")

	out, err = executeCommand(t, laptopAndMonitor(), "", "mode", "preferred", "eDP-1")
	require.NoError(t, err)
	assert.Contains(t, out, "1920x1080@60")

	out, err = executeCommand(t, laptopAndMonitor(), "", "mode", "list", "HDMI-1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2560x1440@75")
	assert.Contains(t, lines[1], "1920x1080@60")
}

func TestModeCurrentOfDisabledDisplay(t *testing.T) {
	comp := sessiontest.New(sessiontest.HeadSpec{
		Name: "DP-1",
		Modes: []sessiontest.ModeSpec{
			{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true},
		},
	})

	_, err := executeCommand(t, comp, "", "mode", "current", "DP-1")
	assert.ErrorIs(t, err, output.ErrNoCurrentMode)
}

func TestModeSetAdvertised(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "mode", "set", "HDMI-1", "1920x1080@60")
	require.NoError(t, err)
	assert.Contains(t, out, "Set mode 1920x1080@60 for display HDMI-1")
	assert.NotContains(t, out, "does not exist")

	m, ok := comp.CurrentMode("HDMI-1")
	require.True(t, ok)
	assert.Equal(t, int32(1920), m.Width)
	assert.Equal(t, 1, comp.Count("set_mode"))
	assert.Equal(t, 0, comp.Count("set_custom_mode"))
}

func TestModeSetCustomDeclined(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "n\n", "mode", "set", "HDMI-1", "3840x2160@30")
	assert.ErrorIs(t, err, ErrAborted)
	assert.Contains(t, out, "The specified mode 3840x2160@30 does not exist for display HDMI-1")
	assert.Equal(t, 0, comp.Count("create_configuration"))
}

func TestModeSetCustomAccepted(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "y\n", "mode", "set", "HDMI-1", "3840x2160@30")
	require.NoError(t, err)
	assert.Contains(t, out, "Set mode 3840x2160@30 for display HDMI-1")
	assert.Equal(t, 1, comp.Count("set_custom_mode"))

	m, ok := comp.CurrentMode("HDMI-1")
	require.True(t, ok)
	assert.Equal(t, int32(3840), m.Width)
	assert.Equal(t, int32(30000), m.Refresh)
}

func TestModeSetCustomForced(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "mode", "set", "--force", "HDMI-1", "3840x2160@30")
	require.NoError(t, err)
	assert.NotContains(t, out, "does not exist")
	assert.Equal(t, 1, comp.Count("set_custom_mode"))
}

func TestModeSetAssumeYes(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "--yes", "mode", "set", "HDMI-1", "3840x2160@30")
	require.NoError(t, err)
	assert.Equal(t, 1, comp.Count("set_custom_mode"))
}

func TestModeSetInvalidSpec(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "mode", "set", "HDMI-1", "1920x1080")
	require.Error(t, err)
	assert.Equal(t, 0, comp.Count("get_registry"))
}

func TestModeSetFractionalRate(t *testing.T) {
	comp := sessiontest.New(sessiontest.HeadSpec{
		Name:    "DP-1",
		Enabled: true,
		Modes: []sessiontest.ModeSpec{
			{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true},
			{Width: 1920, Height: 1080, Refresh: 59940},
		},
	})

	out, err := executeCommand(t, comp, "", "mode", "set", "DP-1", "1920x1080@59")
	require.NoError(t, err)
	assert.NotContains(t, out, "does not exist")
	assert.Equal(t, 0, comp.Count("set_custom_mode"))

	m, _ := comp.CurrentMode("DP-1")
	assert.Equal(t, int32(59940), m.Refresh)
}

func TestModeSetRateOutOfRange(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "mode", "set", "--force", "HDMI-1", "1920x1080@2147484")
	assert.ErrorContains(t, err, "refresh rate")
	assert.Equal(t, 0, comp.Count("set_custom_mode"))
}

func TestModeSetFailed(t *testing.T) {
	comp := laptopAndMonitor()
	comp.QueueResults(output.Failed)

	_, err := executeCommand(t, comp, "", "mode", "set", "HDMI-1", "1920x1080@60")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "Failed to set mode 1920x1080@60 for display HDMI-1")

	m, _ := comp.CurrentMode("HDMI-1")
	assert.Equal(t, int32(2560), m.Width)
}

func TestModeSetDryRun(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "mode", "set", "--dry-run", "HDMI-1", "1920x1080@60")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")
	assert.Equal(t, 1, comp.Count("test"))
	assert.Equal(t, 0, comp.Count("apply"))

	m, _ := comp.CurrentMode("HDMI-1")
	assert.Equal(t, int32(2560), m.Width)
}

func TestModeAuto(t *testing.T) {
	comp := sessiontest.New(sessiontest.HeadSpec{
		Name:    "DP-1",
		Enabled: true,
		Modes: []sessiontest.ModeSpec{
			{Width: 2560, Height: 1440, Refresh: 144000, Preferred: true},
			{Width: 1920, Height: 1080, Refresh: 60000, Current: true},
		},
	})

	out, err := executeCommand(t, comp, "", "mode", "auto", "DP-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Auto set mode 2560x1440@144 for display DP-1")

	m, _ := comp.CurrentMode("DP-1")
	assert.Equal(t, int32(2560), m.Width)
}

func TestMovePosition(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "move", "position", "HDMI-1", "--", "-1920", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Set position for display HDMI-1 to x: -1920 y: 0")

	// eDP-1 stays closest to the origin so nothing is renormalized.
	hdmi, _ := comp.Head("HDMI-1")
	assert.Equal(t, int32(-1920), hdmi.X)
	assert.Equal(t, 1, comp.Count("create_configuration"))
}

func TestMovePositionTrailingFlag(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "move", "position", "HDMI-1", "10", "20", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")
	assert.Equal(t, 1, comp.Count("test"))
	assert.Equal(t, 0, comp.Count("apply"))

	hdmi, _ := comp.Head("HDMI-1")
	assert.Equal(t, int32(1920), hdmi.X)
}

func TestMovePositionInvalid(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "move", "position", "HDMI-1", "left", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid x coordinate")
	assert.Equal(t, 0, comp.Count("get_registry"))
}

func TestMoveAbove(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "move", "above", "eDP-1", "HDMI-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved display eDP-1 above HDMI-1")

	// eDP-1 went to (1920,-1080), then HDMI-1 was moved back to the origin.
	edp, _ := comp.Head("eDP-1")
	hdmi, _ := comp.Head("HDMI-1")
	assert.Equal(t, [2]int32{0, -1080}, [2]int32{edp.X, edp.Y})
	assert.Equal(t, [2]int32{0, 0}, [2]int32{hdmi.X, hdmi.Y})
	assert.Equal(t, 2, comp.Count("create_configuration"))
}

func TestMoveRightOf(t *testing.T) {
	comp := sessiontest.New(
		sessiontest.HeadSpec{
			Name:    "eDP-1",
			Enabled: true,
			Modes:   []sessiontest.ModeSpec{{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true}},
		},
		sessiontest.HeadSpec{
			Name:    "DP-1",
			Enabled: true,
			X:       -2560,
			Modes:   []sessiontest.ModeSpec{{Width: 2560, Height: 1440, Refresh: 60000, Preferred: true, Current: true}},
		},
	)

	_, err := executeCommand(t, comp, "", "move", "right-of", "DP-1", "eDP-1")
	require.NoError(t, err)

	dp, _ := comp.Head("DP-1")
	assert.Equal(t, int32(1920), dp.X)
	assert.Equal(t, int32(0), dp.Y)
}

func TestMoveSameDisplay(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "move", "below", "eDP-1", "eDP-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second display must be different")
	assert.Equal(t, 0, comp.Count("get_registry"))
}

func TestMirror(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "mirror", "eDP-1", "HDMI-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Mirrored display eDP-1(1920x1080@60) same-as HDMI-1(1920x1080@60).")
	assert.Contains(t, out, "Using 1920x1080@60 and 1920x1080@60 as best common resolution.")

	edp, _ := comp.Head("eDP-1")
	hdmi, _ := comp.Head("HDMI-1")
	assert.Equal(t, edp.X, hdmi.X)
	assert.Equal(t, edp.Y, hdmi.Y)
	m, _ := comp.CurrentMode("HDMI-1")
	assert.Equal(t, int32(1920), m.Width)
}

func TestMirrorDisabledDisplay(t *testing.T) {
	comp := sessiontest.New(
		sessiontest.HeadSpec{
			Name:  "eDP-1",
			Modes: []sessiontest.ModeSpec{{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true}},
		},
		sessiontest.HeadSpec{
			Name:    "HDMI-1",
			Enabled: true,
			Modes:   []sessiontest.ModeSpec{{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true}},
		},
	)

	_, err := executeCommand(t, comp, "", "mirror", "eDP-1", "HDMI-1")
	assert.ErrorIs(t, err, output.ErrNoCurrentMode)
	assert.Contains(t, err.Error(), "eDP-1")
	assert.Equal(t, 0, comp.Count("create_configuration"))
}

func TestMirrorWithoutCommonMode(t *testing.T) {
	comp := sessiontest.New(
		sessiontest.HeadSpec{
			Name:    "eDP-1",
			Enabled: true,
			Modes:   []sessiontest.ModeSpec{{Width: 1920, Height: 1200, Refresh: 60000, Current: true}},
		},
		sessiontest.HeadSpec{
			Name:    "DP-1",
			Enabled: true,
			X:       1920,
			Modes:   []sessiontest.ModeSpec{{Width: 2560, Height: 1440, Refresh: 60000, Current: true}},
		},
	)

	_, err := executeCommand(t, comp, "", "mirror", "eDP-1", "DP-1")
	assert.ErrorIs(t, err, output.ErrNoCommonMode)
	assert.Equal(t, 0, comp.Count("create_configuration"))
}

func TestPowerOff(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "power", "HDMI-1", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully disabled display HDMI-1")
	assert.NotContains(t, out, "last display")

	hdmi, _ := comp.Head("HDMI-1")
	assert.False(t, hdmi.Enabled)
	assert.Equal(t, 1, comp.Count("disable_head"))
}

func TestPowerOffLastDisplay(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		comp := laptopOnly()

		out, err := executeCommand(t, comp, "n\n", "power", "eDP-1", "off")
		assert.ErrorIs(t, err, ErrAborted)
		assert.Contains(t, out, "You are about to power off your last display")
		assert.Equal(t, 0, comp.Count("create_configuration"))

		edp, _ := comp.Head("eDP-1")
		assert.True(t, edp.Enabled)
	})

	t.Run("no answer", func(t *testing.T) {
		comp := laptopOnly()

		_, err := executeCommand(t, comp, "", "power", "eDP-1", "off")
		assert.ErrorIs(t, err, ErrAborted)
		assert.Equal(t, 0, comp.Count("create_configuration"))
	})

	t.Run("accepted", func(t *testing.T) {
		comp := laptopOnly()

		_, err := executeCommand(t, comp, "y\n", "power", "eDP-1", "off")
		require.NoError(t, err)
		edp, _ := comp.Head("eDP-1")
		assert.False(t, edp.Enabled)
	})

	t.Run("forced", func(t *testing.T) {
		comp := laptopOnly()

		out, err := executeCommand(t, comp, "", "power", "-f", "eDP-1", "off")
		require.NoError(t, err)
		assert.NotContains(t, out, "last display")
		assert.Equal(t, 1, comp.Count("disable_head"))
	})
}

func TestPowerOn(t *testing.T) {
	comp := sessiontest.New(
		sessiontest.HeadSpec{
			Name:    "eDP-1",
			Enabled: true,
			Modes:   []sessiontest.ModeSpec{{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true, Current: true}},
		},
		sessiontest.HeadSpec{
			Name:  "DP-1",
			X:     1920,
			Modes: []sessiontest.ModeSpec{{Width: 2560, Height: 1440, Refresh: 144000, Preferred: true}},
		},
	)

	out, err := executeCommand(t, comp, "", "power", "DP-1", "ON")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully enabled display DP-1")
	assert.Equal(t, 1, comp.Count("set_mode"))

	dp, _ := comp.Head("DP-1")
	assert.True(t, dp.Enabled)
	m, ok := comp.CurrentMode("DP-1")
	require.True(t, ok)
	assert.Equal(t, int32(144000), m.Refresh)
}

func TestPowerInvalidState(t *testing.T) {
	comp := laptopAndMonitor()

	_, err := executeCommand(t, comp, "", "power", "HDMI-1", "standby")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected on or off")
	assert.Equal(t, 0, comp.Count("get_registry"))
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, laptopAndMonitor(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wlout "+Version)
	assert.Contains(t, out, "commit: ")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wlout.toml")

	t.Run("init creates the file", func(t *testing.T) {
		out, err := executeCommand(t, nil, "", "--config", path, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, path)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("init keeps an existing file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("[apply]\nrenormalize = false\n"), 0600))

		out, err := executeCommand(t, nil, "", "--config", path, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "already exists")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "renormalize = false")
	})

	t.Run("show reads the file", func(t *testing.T) {
		out, err := executeCommand(t, nil, "", "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "apply.renormalize")
		assert.Contains(t, out, "false")
	})

	t.Run("init with force overwrites", func(t *testing.T) {
		_, err := executeCommand(t, nil, "", "--config", path, "config", "init", "--force")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "renormalize = true")
	})

	t.Run("path", func(t *testing.T) {
		out, err := executeCommand(t, nil, "", "--config", path, "config", "path")
		require.NoError(t, err)
		assert.Equal(t, path+"\n", out)
	})
}

func TestConfigDisablesRenormalize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wlout.toml")
	require.NoError(t, os.WriteFile(path, []byte("[apply]\nrenormalize = false\n"), 0600))

	comp := laptopAndMonitor()
	_, err := executeCommand(t, comp, "", "--config", path, "move", "above", "eDP-1", "HDMI-1")
	require.NoError(t, err)

	edp, _ := comp.Head("eDP-1")
	assert.Equal(t, [2]int32{1920, -1080}, [2]int32{edp.X, edp.Y})
	assert.Equal(t, 1, comp.Count("create_configuration"))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, laptopAndMonitor(), "", "--log-level", "loud", "list")
	require.Error(t, err)
}

func TestConfigure(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "configure", "HDMI-1", "--scale", "1.5", "--transform", "90", "--adaptive-sync", "on")
	require.NoError(t, err)
	assert.Contains(t, out, "Set scale 1.5, transform 90, adaptive sync enabled for display HDMI-1")
	assert.Equal(t, 1, comp.Count("set_scale"))
	assert.Equal(t, 1, comp.Count("set_transform"))
	assert.Equal(t, 1, comp.Count("set_adaptive_sync"))
	assert.Equal(t, 0, comp.Count("set_mode"))

	hdmi, _ := comp.Head("HDMI-1")
	assert.Equal(t, 1.5, hdmi.Scale)
	assert.Equal(t, int32(output.Transform90), hdmi.Transform)
	assert.Equal(t, uint32(output.AdaptiveSyncEnabled), hdmi.AdaptiveSync)
}

func TestConfigureOnlySetFlags(t *testing.T) {
	comp := laptopAndMonitor()

	out, err := executeCommand(t, comp, "", "configure", "eDP-1", "--transform", "flipped-180", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")
	assert.Equal(t, 1, comp.Count("set_transform"))
	assert.Equal(t, 0, comp.Count("set_scale"))
	assert.Equal(t, 0, comp.Count("set_adaptive_sync"))
	assert.Equal(t, 0, comp.Count("apply"))
}

func TestConfigureInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flags", []string{"configure", "eDP-1"}, "nothing to change"},
		{"zero scale", []string{"configure", "eDP-1", "--scale", "0"}, "invalid scale"},
		{"bad transform", []string{"configure", "eDP-1", "--transform", "45"}, "invalid transform"},
		{"bad adaptive sync", []string{"configure", "eDP-1", "--adaptive-sync", "maybe"}, "invalid adaptive sync"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := laptopAndMonitor()
			_, err := executeCommand(t, comp, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
			assert.Equal(t, 0, comp.Count("get_registry"))
		})
	}
}

func TestConfigureDisabledDisplay(t *testing.T) {
	comp := sessiontest.New(sessiontest.HeadSpec{
		Name:  "DP-1",
		Modes: []sessiontest.ModeSpec{{Width: 1920, Height: 1080, Refresh: 60000, Preferred: true}},
	})

	_, err := executeCommand(t, comp, "", "configure", "DP-1", "--scale", "2")
	assert.ErrorIs(t, err, output.ErrNoCurrentMode)
	assert.Equal(t, 0, comp.Count("create_configuration"))
}
