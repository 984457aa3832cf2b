package protocols

import "fmt"

// Event is one decoded protocol event. The concrete types below form a
// closed set; consumers switch on them.
type Event interface {
	// Sender is the object the event was sent by.
	Sender() ObjectID
	event()
}

// DisplayError is the fatal wl_display.error event.
type DisplayError struct {
	Object  ObjectID
	Code    uint32
	Message string
}

func (e DisplayError) Error() string {
	return fmt.Sprintf("wayland protocol error on object %v (code %d): %s", e.Object, e.Code, e.Message)
}

type DeleteID struct {
	ID ObjectID
}

type Global struct {
	Registry  ObjectID
	Name      uint32
	Interface string
	Version   uint32
}

type GlobalRemove struct {
	Registry ObjectID
	Name     uint32
}

type CallbackDone struct {
	Callback ObjectID
	Data     uint32
}

type HeadAdded struct {
	Manager ObjectID
	Head    ObjectID
}

type ManagerDone struct {
	Manager ObjectID
	Serial  uint32
}

type ManagerFinished struct {
	Manager ObjectID
}

type HeadName struct {
	Head ObjectID
	Name string
}

type HeadDescription struct {
	Head        ObjectID
	Description string
}

// HeadPhysicalSize is in millimeters.
type HeadPhysicalSize struct {
	Head          ObjectID
	Width, Height int32
}

type ModeAdded struct {
	Head ObjectID
	Mode ObjectID
}

type HeadEnabled struct {
	Head    ObjectID
	Enabled bool
}

type HeadCurrentMode struct {
	Head ObjectID
	Mode ObjectID
}

type HeadPosition struct {
	Head ObjectID
	X, Y int32
}

type HeadTransform struct {
	Head      ObjectID
	Transform int32
}

type HeadScale struct {
	Head  ObjectID
	Scale float64
}

type HeadFinished struct {
	Head ObjectID
}

type HeadMake struct {
	Head ObjectID
	Make string
}

type HeadModel struct {
	Head  ObjectID
	Model string
}

type HeadSerialNumber struct {
	Head         ObjectID
	SerialNumber string
}

type HeadAdaptiveSync struct {
	Head  ObjectID
	State uint32
}

type ModeSize struct {
	Mode          ObjectID
	Width, Height int32
}

// ModeRefresh carries the refresh rate in mHz.
type ModeRefresh struct {
	Mode    ObjectID
	Refresh int32
}

type ModePreferred struct {
	Mode ObjectID
}

type ModeFinished struct {
	Mode ObjectID
}

type ConfigurationSucceeded struct {
	Configuration ObjectID
}

type ConfigurationFailed struct {
	Configuration ObjectID
}

type ConfigurationCancelled struct {
	Configuration ObjectID
}

func (DisplayError) event()           {}
func (DeleteID) event()               {}
func (Global) event()                 {}
func (GlobalRemove) event()           {}
func (CallbackDone) event()           {}
func (HeadAdded) event()              {}
func (ManagerDone) event()            {}
func (ManagerFinished) event()        {}
func (HeadName) event()               {}
func (HeadDescription) event()        {}
func (HeadPhysicalSize) event()       {}
func (ModeAdded) event()              {}
func (HeadEnabled) event()            {}
func (HeadCurrentMode) event()        {}
func (HeadPosition) event()           {}
func (HeadTransform) event()          {}
func (HeadScale) event()              {}
func (HeadFinished) event()           {}
func (HeadMake) event()               {}
func (HeadModel) event()              {}
func (HeadSerialNumber) event()       {}
func (HeadAdaptiveSync) event()       {}
func (ModeSize) event()               {}
func (ModeRefresh) event()            {}
func (ModePreferred) event()          {}
func (ModeFinished) event()           {}
func (ConfigurationSucceeded) event() {}
func (ConfigurationFailed) event()    {}
func (ConfigurationCancelled) event() {}

func (DisplayError) Sender() ObjectID             { return DisplayID }
func (DeleteID) Sender() ObjectID                 { return DisplayID }
func (g Global) Sender() ObjectID                 { return g.Registry }
func (g GlobalRemove) Sender() ObjectID           { return g.Registry }
func (c CallbackDone) Sender() ObjectID           { return c.Callback }
func (h HeadAdded) Sender() ObjectID              { return h.Manager }
func (m ManagerDone) Sender() ObjectID            { return m.Manager }
func (m ManagerFinished) Sender() ObjectID        { return m.Manager }
func (h HeadName) Sender() ObjectID               { return h.Head }
func (h HeadDescription) Sender() ObjectID        { return h.Head }
func (h HeadPhysicalSize) Sender() ObjectID       { return h.Head }
func (m ModeAdded) Sender() ObjectID              { return m.Head }
func (h HeadEnabled) Sender() ObjectID            { return h.Head }
func (h HeadCurrentMode) Sender() ObjectID        { return h.Head }
func (h HeadPosition) Sender() ObjectID           { return h.Head }
func (h HeadTransform) Sender() ObjectID          { return h.Head }
func (h HeadScale) Sender() ObjectID              { return h.Head }
func (h HeadFinished) Sender() ObjectID           { return h.Head }
func (h HeadMake) Sender() ObjectID               { return h.Head }
func (h HeadModel) Sender() ObjectID              { return h.Head }
func (h HeadSerialNumber) Sender() ObjectID       { return h.Head }
func (h HeadAdaptiveSync) Sender() ObjectID       { return h.Head }
func (m ModeSize) Sender() ObjectID               { return m.Mode }
func (m ModeRefresh) Sender() ObjectID            { return m.Mode }
func (m ModePreferred) Sender() ObjectID          { return m.Mode }
func (m ModeFinished) Sender() ObjectID           { return m.Mode }
func (c ConfigurationSucceeded) Sender() ObjectID { return c.Configuration }
func (c ConfigurationFailed) Sender() ObjectID    { return c.Configuration }
func (c ConfigurationCancelled) Sender() ObjectID { return c.Configuration }
