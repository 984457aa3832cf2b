package output

import (
	"fmt"
	"sort"
)

// CommonModes returns the modes of a whose resolution is also offered by
// b, and the modes of b whose resolution is also offered by a. Refresh
// rates are not compared.
func CommonModes(a, b Head) (setA, setB []Mode) {
	return sharedSizes(a.Modes, b.Modes), sharedSizes(b.Modes, a.Modes)
}

func sharedSizes(modes, other []Mode) []Mode {
	var out []Mode
	for _, m := range modes {
		for _, o := range other {
			if m.SameSize(o) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// SortModes returns a copy of modes ordered by height, width and rate,
// largest first.
func SortModes(modes []Mode) []Mode {
	sorted := make([]Mode, len(modes))
	copy(sorted, modes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		if a.Width != b.Width {
			return a.Width > b.Width
		}
		return a.Rate() > b.Rate()
	})
	return sorted
}

// BestPair picks the best mode of each set. Both sets are ordered
// independently with SortModes.
func BestPair(setA, setB []Mode) (Mode, Mode, error) {
	if len(setA) == 0 || len(setB) == 0 {
		return Mode{}, Mode{}, ErrNoCommonMode
	}
	return SortModes(setA)[0], SortModes(setB)[0], nil
}

// MirrorModes returns the best pair of common modes of a and b.
func MirrorModes(a, b Head) (Mode, Mode, error) {
	setA, setB := CommonModes(a, b)
	ma, mb, err := BestPair(setA, setB)
	if err != nil {
		return Mode{}, Mode{}, fmt.Errorf("%w between %s and %s", err, a.Name, b.Name)
	}
	return ma, mb, nil
}
