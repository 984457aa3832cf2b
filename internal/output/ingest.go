package output

import (
	"fmt"

	"github.com/bnema/wlout/internal/protocols"
)

// Apply folds one event into the state. Events about identities the
// state never saw return an error wrapping ErrUnknownObject and leave the
// state untouched. Events the model does not track are ignored.
func (s *State) Apply(ev protocols.Event) error {
	switch e := ev.(type) {
	case protocols.HeadAdded:
		if _, ok := s.heads[e.Head]; ok {
			return nil
		}
		s.heads[e.Head] = &Head{ID: e.Head, Scale: 1}
		s.order = append(s.order, e.Head)

	case protocols.ManagerDone:
		s.initialDone = true
		s.serial = e.Serial
		s.hasSerial = true

	case protocols.ManagerFinished:
		s.finished = true

	case protocols.HeadFinished:
		if _, ok := s.heads[e.Head]; !ok {
			return unknown("head", e.Head)
		}
		s.removeHead(e.Head)

	case protocols.ModeAdded:
		h, ok := s.heads[e.Head]
		if !ok {
			return unknown("head", e.Head)
		}
		if h.modeIndex(e.Mode) < 0 {
			h.Modes = append(h.Modes, Mode{ID: e.Mode})
		}
		s.modeOwner[e.Mode] = e.Head

	case protocols.HeadCurrentMode:
		h, ok := s.heads[e.Head]
		if !ok {
			return unknown("head", e.Head)
		}
		i := h.modeIndex(e.Mode)
		if i < 0 {
			return unknown("mode", e.Mode)
		}
		for j := range h.Modes {
			h.Modes[j].Current = j == i
		}

	case protocols.HeadName, protocols.HeadDescription, protocols.HeadPhysicalSize,
		protocols.HeadEnabled, protocols.HeadPosition, protocols.HeadTransform,
		protocols.HeadScale, protocols.HeadMake, protocols.HeadModel,
		protocols.HeadSerialNumber, protocols.HeadAdaptiveSync:
		return s.applyHead(ev)

	case protocols.ModeSize, protocols.ModeRefresh, protocols.ModePreferred, protocols.ModeFinished:
		return s.applyMode(ev)

	case protocols.ConfigurationSucceeded:
		s.settle(e.Configuration, Succeeded)
	case protocols.ConfigurationFailed:
		s.settle(e.Configuration, Failed)
	case protocols.ConfigurationCancelled:
		s.settle(e.Configuration, Cancelled)
	}
	return nil
}

func (s *State) applyHead(ev protocols.Event) error {
	id := ev.Sender()
	h, ok := s.heads[id]
	if !ok {
		return unknown("head", id)
	}

	switch e := ev.(type) {
	case protocols.HeadName:
		h.Name = e.Name
	case protocols.HeadDescription:
		h.Description = e.Description
	case protocols.HeadPhysicalSize:
		h.PhysicalSize = &Size{Width: e.Width, Height: e.Height}
	case protocols.HeadEnabled:
		h.Enabled = e.Enabled
		if !e.Enabled {
			// Disabled heads have no current mode.
			for i := range h.Modes {
				h.Modes[i].Current = false
			}
		}
	case protocols.HeadPosition:
		h.Position = &Position{X: e.X, Y: e.Y}
	case protocols.HeadTransform:
		h.Transform = Transform(e.Transform)
	case protocols.HeadScale:
		h.Scale = e.Scale
	case protocols.HeadMake:
		h.Make = e.Make
	case protocols.HeadModel:
		h.Model = e.Model
	case protocols.HeadSerialNumber:
		h.SerialNumber = e.SerialNumber
	case protocols.HeadAdaptiveSync:
		h.AdaptiveSync = AdaptiveSync(e.State)
	}
	return nil
}

func (s *State) applyMode(ev protocols.Event) error {
	id := ev.Sender()
	h, i, ok := s.mode(id)
	if !ok {
		return unknown("mode", id)
	}

	switch e := ev.(type) {
	case protocols.ModeSize:
		h.Modes[i].Width = e.Width
		h.Modes[i].Height = e.Height
	case protocols.ModeRefresh:
		h.Modes[i].Refresh = e.Refresh
	case protocols.ModePreferred:
		h.Modes[i].Preferred = true
	case protocols.ModeFinished:
		h.Modes = append(h.Modes[:i], h.Modes[i+1:]...)
		delete(s.modeOwner, id)
	}
	return nil
}

// settle records the result of config if it is the pending one. Answers
// to any other configuration are dropped.
func (s *State) settle(config protocols.ObjectID, r Result) {
	if s.pending == 0 || config != s.pending || s.result != ResultPending {
		return
	}
	s.result = r
}

func unknown(kind string, id protocols.ObjectID) error {
	return fmt.Errorf("%w: %s %v", ErrUnknownObject, kind, id)
}
