package output

// Renormalize returns the directives that shift the layout so the
// enabled head closest to the origin lands on (0,0). Distance is the
// squared euclidean norm of the head's position; ties go to the head
// advertised first. It returns nil when the layout is already anchored
// at the origin or has no positioned enabled head.
func Renormalize(heads []Head) []Directive {
	var (
		placed  []Head
		anchor  Position
		best    int64
		hasBest bool
	)
	for _, h := range heads {
		if !h.Enabled || h.Position == nil {
			continue
		}
		placed = append(placed, h)

		x, y := int64(h.Position.X), int64(h.Position.Y)
		if d := x*x + y*y; !hasBest || d < best {
			best, anchor, hasBest = d, *h.Position, true
		}
	}
	if !hasBest || (anchor.X == 0 && anchor.Y == 0) {
		return nil
	}

	directives := make([]Directive, 0, len(placed))
	for _, h := range placed {
		directives = append(directives, Enable(h, WithPosition(Position{
			X: h.Position.X - anchor.X,
			Y: h.Position.Y - anchor.Y,
		})))
	}
	return directives
}
