package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectiveOptions(t *testing.T) {
	h := Head{ID: objectID(7), Name: "eDP-1"}
	m := mode(9, 1920, 1080, 60000)

	d := Enable(h, WithMode(m), WithCustomMode(2560, 1440, 75000))
	assert.Nil(t, d.Mode)
	assert.Equal(t, &CustomMode{Width: 2560, Height: 1440, Refresh: 75000}, d.CustomMode)

	d = Enable(h, WithCustomMode(2560, 1440, 75000), WithMode(m), WithPosition(Position{X: -1420, Y: 300}))
	assert.Nil(t, d.CustomMode)
	assert.Equal(t, &m, d.Mode)
	assert.Equal(t, "enable eDP-1 mode 1920x1080@60 position (-1420,300)", d.String())

	d = Enable(h, WithTransform(Transform270), WithScale(1.25), WithAdaptiveSync(AdaptiveSyncEnabled))
	assert.Equal(t, "enable eDP-1 transform 270 scale 1.25 adaptive sync enabled", d.String())

	d = Disable(h)
	assert.False(t, d.Enable)
	assert.Equal(t, "disable eDP-1", d.String())
	assert.Equal(t, "disable #12", Disable(Head{ID: objectID(12)}).String())
}
