package output

import (
	"fmt"

	"github.com/bnema/wlout/internal/protocols"
)

// State is the client-side snapshot of the compositor's output
// configuration. It is mutated only through Apply and is not safe for
// concurrent use.
type State struct {
	heads     map[protocols.ObjectID]*Head
	order     []protocols.ObjectID
	modeOwner map[protocols.ObjectID]protocols.ObjectID

	initialDone bool
	serial      uint32
	hasSerial   bool
	finished    bool

	pending protocols.ObjectID
	result  Result
}

func NewState() *State {
	return &State{
		heads:     make(map[protocols.ObjectID]*Head),
		modeOwner: make(map[protocols.ObjectID]protocols.ObjectID),
	}
}

// InitialDone reports whether the manager sent its first done event.
func (s *State) InitialDone() bool {
	return s.initialDone
}

// Serial returns the serial of the last done event.
func (s *State) Serial() (uint32, bool) {
	return s.serial, s.hasSerial
}

// Finished reports whether the compositor retired the manager.
func (s *State) Finished() bool {
	return s.finished
}

// Heads returns copies of all heads in advertisement order.
func (s *State) Heads() []Head {
	heads := make([]Head, 0, len(s.order))
	for _, id := range s.order {
		heads = append(heads, s.heads[id].Clone())
	}
	return heads
}

// Head returns the first head named name in advertisement order. Names
// are not guaranteed unique by the protocol.
func (s *State) Head(name string) (Head, error) {
	for _, id := range s.order {
		if h := s.heads[id]; h.Name == name {
			return h.Clone(), nil
		}
	}
	return Head{}, fmt.Errorf("%w: %s", ErrDisplayNotFound, name)
}

func (s *State) HeadByID(id protocols.ObjectID) (Head, bool) {
	h, ok := s.heads[id]
	if !ok {
		return Head{}, false
	}
	return h.Clone(), true
}

// EnabledCount returns the number of enabled heads.
func (s *State) EnabledCount() int {
	n := 0
	for _, h := range s.heads {
		if h.Enabled {
			n++
		}
	}
	return n
}

// BeginTransaction marks config as the pending configuration and clears
// the result slot.
func (s *State) BeginTransaction(config protocols.ObjectID) {
	s.pending = config
	s.result = ResultPending
}

// Pending returns the pending configuration, if any.
func (s *State) Pending() (protocols.ObjectID, bool) {
	return s.pending, s.pending != 0
}

// Result returns the answer received for the pending configuration.
func (s *State) Result() Result {
	return s.result
}

// EndTransaction forgets the pending configuration and its result.
func (s *State) EndTransaction() {
	s.pending = 0
	s.result = ResultPending
}

func (s *State) mode(id protocols.ObjectID) (*Head, int, bool) {
	owner, ok := s.modeOwner[id]
	if !ok {
		return nil, 0, false
	}
	h, ok := s.heads[owner]
	if !ok {
		return nil, 0, false
	}
	i := h.modeIndex(id)
	return h, i, i >= 0
}

func (s *State) removeHead(id protocols.ObjectID) {
	h, ok := s.heads[id]
	if !ok {
		return
	}
	for _, m := range h.Modes {
		delete(s.modeOwner, m.ID)
	}
	delete(s.heads, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
