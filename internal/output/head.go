// Package output holds the client-side model of the compositor's output
// configuration: heads, their modes, and the algorithms that derive new
// configurations from them.
package output

import (
	"fmt"
	"strings"

	"github.com/bnema/wlout/internal/protocols"
)

// Head represents a physical output device (monitor)
type Head struct {
	ID           protocols.ObjectID
	Name         string
	Description  string
	Make         string
	Model        string
	SerialNumber string
	Enabled      bool
	// Position is nil until the compositor advertises one.
	Position *Position
	// PhysicalSize is in millimeters, nil when unknown.
	PhysicalSize *Size
	Transform    Transform
	Scale        float64
	AdaptiveSync AdaptiveSync
	// Modes are kept in advertisement order.
	Modes []Mode
}

// Mode represents a display mode
type Mode struct {
	ID        protocols.ObjectID
	Width     int32
	Height    int32
	Refresh   int32 // in mHz
	Preferred bool
	Current   bool
}

// Position represents the position of an output in the global compositor space
type Position struct {
	X int32
	Y int32
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size represents the size of an output
type Size struct {
	Width  int32
	Height int32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Transform represents output transformation
type Transform int32

// Transform constants for output rotation and flipping
const (
	TransformNormal     Transform = iota // No transformation
	Transform90                          // 90 degree counter-clockwise rotation
	Transform180                         // 180 degree rotation
	Transform270                         // 270 degree counter-clockwise rotation
	TransformFlipped                     // Horizontal flip
	TransformFlipped90                   // Horizontal flip + 90 degree rotation
	TransformFlipped180                  // Horizontal flip + 180 degree rotation
	TransformFlipped270                  // Horizontal flip + 270 degree rotation
)

// String returns a string representation of the transform
func (t Transform) String() string {
	switch t {
	case TransformNormal:
		return "normal"
	case Transform90:
		return "90"
	case Transform180:
		return "180"
	case Transform270:
		return "270"
	case TransformFlipped:
		return "flipped"
	case TransformFlipped90:
		return "flipped-90"
	case TransformFlipped180:
		return "flipped-180"
	case TransformFlipped270:
		return "flipped-270"
	default:
		return "unknown"
	}
}

// ParseTransform is the inverse of Transform.String.
func ParseTransform(s string) (Transform, error) {
	for t := TransformNormal; t <= TransformFlipped270; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return TransformNormal, fmt.Errorf("invalid transform %q, expected normal, 90, 180, 270, flipped or flipped-90/180/270", s)
}

// AdaptiveSync is the head's variable refresh rate state.
type AdaptiveSync uint32

const (
	AdaptiveSyncDisabled AdaptiveSync = 0
	AdaptiveSyncEnabled  AdaptiveSync = 1
)

func (a AdaptiveSync) String() string {
	if a == AdaptiveSyncEnabled {
		return "enabled"
	}
	return "disabled"
}

// ParseAdaptiveSync accepts on/off as well as enabled/disabled.
func ParseAdaptiveSync(s string) (AdaptiveSync, error) {
	switch strings.ToLower(s) {
	case "on", "enabled":
		return AdaptiveSyncEnabled, nil
	case "off", "disabled":
		return AdaptiveSyncDisabled, nil
	}
	return AdaptiveSyncDisabled, fmt.Errorf("invalid adaptive sync state %q, expected on or off", s)
}

// Rate returns the refresh rate in whole Hz, truncated: 59940 mHz is 59.
func (m Mode) Rate() int32 {
	return m.Refresh / 1000
}

// String formats the mode as WxH@R.
func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%d", m.Width, m.Height, m.Rate())
}

// SameSize reports whether both modes have the same resolution.
func (m Mode) SameSize(o Mode) bool {
	return m.Width == o.Width && m.Height == o.Height
}

// Clone returns a deep copy of the head.
func (h Head) Clone() Head {
	c := h
	if h.Position != nil {
		p := *h.Position
		c.Position = &p
	}
	if h.PhysicalSize != nil {
		s := *h.PhysicalSize
		c.PhysicalSize = &s
	}
	if h.Modes != nil {
		c.Modes = make([]Mode, len(h.Modes))
		copy(c.Modes, h.Modes)
	}
	return c
}

// CurrentMode returns the mode the head is currently using.
func (h Head) CurrentMode() (Mode, bool) {
	for _, m := range h.Modes {
		if m.Current {
			return m, true
		}
	}
	return Mode{}, false
}

// PreferredMode returns the first mode flagged preferred.
func (h Head) PreferredMode() (Mode, bool) {
	for _, m := range h.Modes {
		if m.Preferred {
			return m, true
		}
	}
	return Mode{}, false
}

// FindMode returns the first advertised mode matching the resolution and
// the refresh rate in Hz.
func (h Head) FindMode(width, height, rate int32) (Mode, bool) {
	for _, m := range h.Modes {
		if m.Width == width && m.Height == height && m.Rate() == rate {
			return m, true
		}
	}
	return Mode{}, false
}

func (h Head) modeIndex(id protocols.ObjectID) int {
	for i, m := range h.Modes {
		if m.ID == id {
			return i
		}
	}
	return -1
}
