package output

import (
	"fmt"
	"strings"
)

// Placement is where a display goes relative to another one.
type Placement int

const (
	Above Placement = iota
	Below
	LeftOf
	RightOf
)

var placementNames = map[Placement]string{
	Above:   "above",
	Below:   "below",
	LeftOf:  "left-of",
	RightOf: "right-of",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return "unknown"
}

// Placements lists the accepted words in CLI order.
func Placements() []Placement {
	return []Placement{Above, Below, LeftOf, RightOf}
}

// ParsePlacement parses above, below, left-of or right-of.
func ParsePlacement(s string) (Placement, error) {
	for p, name := range placementNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid placement %q, expected above, below, left-of or right-of", s)
}

// Place computes the new position of moved so that it sits next to ref.
// Both heads need a position and a current mode.
func Place(moved, ref Head, p Placement) (Position, error) {
	movedMode, ok := moved.CurrentMode()
	if !ok {
		return Position{}, fmt.Errorf("%s: %w", moved.Name, ErrNoCurrentMode)
	}
	refMode, ok := ref.CurrentMode()
	if !ok {
		return Position{}, fmt.Errorf("%s: %w", ref.Name, ErrNoCurrentMode)
	}
	if ref.Position == nil {
		return Position{}, fmt.Errorf("%s: %w", ref.Name, ErrNoPosition)
	}
	if moved.Position == nil {
		return Position{}, fmt.Errorf("%s: %w", moved.Name, ErrNoPosition)
	}

	origin := *ref.Position
	switch p {
	case Above:
		return Position{X: origin.X, Y: origin.Y - movedMode.Height}, nil
	case Below:
		return Position{X: origin.X, Y: origin.Y + refMode.Height}, nil
	case RightOf:
		return Position{X: origin.X + refMode.Width, Y: origin.Y}, nil
	case LeftOf:
		return Position{X: origin.X - movedMode.Width, Y: origin.Y}, nil
	}
	return Position{}, fmt.Errorf("invalid placement %d", int(p))
}
