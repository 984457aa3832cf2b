package output

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ModeSpec is a mode as typed by the user: WxH@R with R in Hz.
type ModeSpec struct {
	Width  int32
	Height int32
	Rate   int32
}

var modeSpecPattern = regexp.MustCompile(`^(\d+)x(\d+)@(\d+)$`)

// maxRate keeps the rate representable in milli-Hertz on the wire.
const maxRate = math.MaxInt32 / 1000

// ParseModeSpec parses strings like 1920x1080@60.
func ParseModeSpec(s string) (ModeSpec, error) {
	m := modeSpecPattern.FindStringSubmatch(s)
	if m == nil {
		return ModeSpec{}, fmt.Errorf("invalid mode %q, expected <width>x<height>@<rate>", s)
	}

	var vals [3]int32
	for i, raw := range m[1:] {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v == 0 {
			return ModeSpec{}, fmt.Errorf("invalid mode %q: %s must be a positive number", s, raw)
		}
		vals[i] = int32(v)
	}
	if vals[2] > maxRate {
		return ModeSpec{}, fmt.Errorf("invalid mode %q: refresh rate must be at most %d Hz", s, maxRate)
	}
	return ModeSpec{Width: vals[0], Height: vals[1], Rate: vals[2]}, nil
}

func (m ModeSpec) String() string {
	return fmt.Sprintf("%dx%d@%d", m.Width, m.Height, m.Rate)
}

// Refresh returns the rate in milli-Hertz.
func (m ModeSpec) Refresh() int32 {
	return m.Rate * 1000
}

// Find returns the mode of h matching the spec.
func (m ModeSpec) Find(h Head) (Mode, error) {
	mode, ok := h.FindMode(m.Width, m.Height, m.Rate)
	if !ok {
		return Mode{}, fmt.Errorf("%w: %s on display %s", ErrModeNotFound, m, h.Name)
	}
	return mode, nil
}
