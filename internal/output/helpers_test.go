package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/wlout/internal/protocols"
)

// fixture feeds a State the way a compositor would announce its heads.
type fixture struct {
	t      *testing.T
	state  *State
	nextID protocols.ObjectID
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, state: NewState(), nextID: protocols.FirstServerID}
}

func (f *fixture) apply(evs ...protocols.Event) {
	f.t.Helper()
	for _, ev := range evs {
		require.NoError(f.t, f.state.Apply(ev))
	}
}

func (f *fixture) id() protocols.ObjectID {
	id := f.nextID
	f.nextID++
	return id
}

// head announces an enabled head at (x, y) with the given modes; the
// first mode is current and preferred.
func (f *fixture) head(name string, x, y int32, modes ...[3]int32) protocols.ObjectID {
	f.t.Helper()
	head := f.id()
	f.apply(
		protocols.HeadAdded{Manager: 5, Head: head},
		protocols.HeadName{Head: head, Name: name},
		protocols.HeadEnabled{Head: head, Enabled: true},
		protocols.HeadPosition{Head: head, X: x, Y: y},
	)
	for i, m := range modes {
		mode := f.id()
		f.apply(
			protocols.ModeAdded{Head: head, Mode: mode},
			protocols.ModeSize{Mode: mode, Width: m[0], Height: m[1]},
			protocols.ModeRefresh{Mode: mode, Refresh: m[2]},
		)
		if i == 0 {
			f.apply(
				protocols.ModePreferred{Mode: mode},
				protocols.HeadCurrentMode{Head: head, Mode: mode},
			)
		}
	}
	return head
}

func (f *fixture) done() {
	f.t.Helper()
	f.apply(protocols.ManagerDone{Manager: 5, Serial: 1})
}

func (f *fixture) get(name string) Head {
	f.t.Helper()
	h, err := f.state.Head(name)
	require.NoError(f.t, err)
	return h
}

func objectID(id uint32) protocols.ObjectID {
	return protocols.ObjectID(id)
}
