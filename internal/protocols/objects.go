package protocols

import (
	"errors"
	"fmt"

	"github.com/bnema/wlout/internal/wire"
)

// ErrUnknownSender is returned by Decode for messages whose sender is not
// in the object table.
var ErrUnknownSender = errors.New("unknown sender object")

// Objects tracks the interface of every live protocol object so inbound
// messages can be decoded. Heads and modes announced by the compositor are
// registered as a side effect of decoding the events that create them.
type Objects struct {
	next    ObjectID
	objects map[ObjectID]string
}

// NewObjects returns a table holding only the display.
func NewObjects() *Objects {
	return &Objects{
		next:    DisplayID + 1,
		objects: map[ObjectID]string{DisplayID: DisplayInterface},
	}
}

// New allocates a client-side identity for iface.
func (o *Objects) New(iface string) ObjectID {
	id := o.next
	o.next++
	o.objects[id] = iface
	return id
}

// Add registers an identity allocated by the compositor.
func (o *Objects) Add(id ObjectID, iface string) {
	o.objects[id] = iface
}

func (o *Objects) Remove(id ObjectID) {
	delete(o.objects, id)
}

// Interface reports the interface name of id.
func (o *Objects) Interface(id ObjectID) (string, bool) {
	iface, ok := o.objects[id]
	return iface, ok
}

// Decode turns msg into an Event according to the interface of its
// sender.
func (o *Objects) Decode(msg *wire.Message) (Event, error) {
	sender := ObjectID(msg.Sender)
	iface, ok := o.objects[sender]
	if !ok {
		return nil, fmt.Errorf("%w %v (opcode %d)", ErrUnknownSender, sender, msg.Op)
	}

	ev, err := o.decode(iface, sender, msg)
	if err != nil {
		return nil, err
	}
	if err := msg.Err(); err != nil {
		return nil, fmt.Errorf("decode %s event %d: %w", iface, msg.Op, err)
	}
	return ev, nil
}

func (o *Objects) decode(iface string, sender ObjectID, msg *wire.Message) (Event, error) {
	switch iface {
	case DisplayInterface:
		switch msg.Op {
		case DisplayErrorEvent:
			return DisplayError{
				Object:  ObjectID(msg.ReadObject()),
				Code:    msg.ReadUint(),
				Message: msg.ReadString(),
			}, nil
		case DisplayDeleteIDEvent:
			return DeleteID{ID: ObjectID(msg.ReadUint())}, nil
		}

	case RegistryInterface:
		switch msg.Op {
		case RegistryGlobalEvent:
			return Global{
				Registry:  sender,
				Name:      msg.ReadUint(),
				Interface: msg.ReadString(),
				Version:   msg.ReadUint(),
			}, nil
		case RegistryGlobalRemoveEvent:
			return GlobalRemove{Registry: sender, Name: msg.ReadUint()}, nil
		}

	case CallbackInterface:
		if msg.Op == CallbackDoneEvent {
			return CallbackDone{Callback: sender, Data: msg.ReadUint()}, nil
		}

	case OutputManagerInterface:
		switch msg.Op {
		case ManagerHeadEvent:
			head := ObjectID(msg.ReadNewID())
			if msg.Err() == nil {
				o.Add(head, OutputHeadInterface)
			}
			return HeadAdded{Manager: sender, Head: head}, nil
		case ManagerDoneEvent:
			return ManagerDone{Manager: sender, Serial: msg.ReadUint()}, nil
		case ManagerFinishedEvent:
			return ManagerFinished{Manager: sender}, nil
		}

	case OutputHeadInterface:
		return o.decodeHead(sender, msg)

	case OutputModeInterface:
		switch msg.Op {
		case ModeSizeEvent:
			return ModeSize{Mode: sender, Width: msg.ReadInt(), Height: msg.ReadInt()}, nil
		case ModeRefreshEvent:
			return ModeRefresh{Mode: sender, Refresh: msg.ReadInt()}, nil
		case ModePreferredEvent:
			return ModePreferred{Mode: sender}, nil
		case ModeFinishedEvent:
			return ModeFinished{Mode: sender}, nil
		}

	case OutputConfigurationInterface:
		switch msg.Op {
		case ConfigurationSucceededEvent:
			return ConfigurationSucceeded{Configuration: sender}, nil
		case ConfigurationFailedEvent:
			return ConfigurationFailed{Configuration: sender}, nil
		case ConfigurationCancelledEvent:
			return ConfigurationCancelled{Configuration: sender}, nil
		}
	}

	return nil, fmt.Errorf("unknown %s event opcode %d", iface, msg.Op)
}

func (o *Objects) decodeHead(head ObjectID, msg *wire.Message) (Event, error) {
	switch msg.Op {
	case HeadNameEvent:
		return HeadName{Head: head, Name: msg.ReadString()}, nil
	case HeadDescriptionEvent:
		return HeadDescription{Head: head, Description: msg.ReadString()}, nil
	case HeadPhysicalSizeEvent:
		return HeadPhysicalSize{Head: head, Width: msg.ReadInt(), Height: msg.ReadInt()}, nil
	case HeadModeEvent:
		mode := ObjectID(msg.ReadNewID())
		if msg.Err() == nil {
			o.Add(mode, OutputModeInterface)
		}
		return ModeAdded{Head: head, Mode: mode}, nil
	case HeadEnabledEvent:
		return HeadEnabled{Head: head, Enabled: msg.ReadInt() != 0}, nil
	case HeadCurrentModeEvent:
		return HeadCurrentMode{Head: head, Mode: ObjectID(msg.ReadObject())}, nil
	case HeadPositionEvent:
		return HeadPosition{Head: head, X: msg.ReadInt(), Y: msg.ReadInt()}, nil
	case HeadTransformEvent:
		return HeadTransform{Head: head, Transform: msg.ReadInt()}, nil
	case HeadScaleEvent:
		return HeadScale{Head: head, Scale: msg.ReadFixed().Float()}, nil
	case HeadFinishedEvent:
		return HeadFinished{Head: head}, nil
	case HeadMakeEvent:
		return HeadMake{Head: head, Make: msg.ReadString()}, nil
	case HeadModelEvent:
		return HeadModel{Head: head, Model: msg.ReadString()}, nil
	case HeadSerialNumberEvent:
		return HeadSerialNumber{Head: head, SerialNumber: msg.ReadString()}, nil
	case HeadAdaptiveSyncEvent:
		return HeadAdaptiveSync{Head: head, State: msg.ReadUint()}, nil
	}
	return nil, fmt.Errorf("unknown %s event opcode %d", OutputHeadInterface, msg.Op)
}
