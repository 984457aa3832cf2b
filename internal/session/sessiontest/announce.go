package sessiontest

import (
	"github.com/bnema/wlout/internal/protocols"
	"github.com/bnema/wlout/internal/wire"
)

func (c *Compositor) announceHead(h *head) {
	c.objects[h.id] = protocols.OutputHeadInterface
	c.send(wire.NewBuilder(c.manager, protocols.ManagerHeadEvent, "zwlr_output_manager_v1.head").WriteNewID(h.id))

	c.headEvent(h, protocols.HeadNameEvent, "name").WriteString(h.spec.Name)
	if h.spec.Description != "" {
		c.headEvent(h, protocols.HeadDescriptionEvent, "description").WriteString(h.spec.Description)
	}
	if h.spec.Make != "" {
		c.headEvent(h, protocols.HeadMakeEvent, "make").WriteString(h.spec.Make)
	}
	if h.spec.Model != "" {
		c.headEvent(h, protocols.HeadModelEvent, "model").WriteString(h.spec.Model)
	}
	if h.spec.SerialNumber != "" {
		c.headEvent(h, protocols.HeadSerialNumberEvent, "serial_number").WriteString(h.spec.SerialNumber)
	}
	for _, id := range h.modes {
		c.announceMode(h, id)
	}
	c.sendHeadState(h)
}

func (c *Compositor) announceMode(h *head, id uint32) {
	c.objects[id] = protocols.OutputModeInterface
	c.headEvent(h, protocols.HeadModeEvent, "mode").WriteNewID(id)

	m := c.modes[id]
	c.modeEvent(id, protocols.ModeSizeEvent, "size").WriteInt(m.Width).WriteInt(m.Height)
	c.modeEvent(id, protocols.ModeRefreshEvent, "refresh").WriteInt(m.Refresh)
	if m.Preferred {
		c.modeEvent(id, protocols.ModePreferredEvent, "preferred")
	}
}

// sendHeadState sends the properties a configuration can change.
func (c *Compositor) sendHeadState(h *head) {
	enabled := int32(0)
	if h.spec.Enabled {
		enabled = 1
	}
	c.headEvent(h, protocols.HeadEnabledEvent, "enabled").WriteInt(enabled)
	if !h.spec.Enabled {
		return
	}
	if current := c.current(h); current != 0 {
		c.headEvent(h, protocols.HeadCurrentModeEvent, "current_mode").WriteObject(current)
	}
	c.headEvent(h, protocols.HeadPositionEvent, "position").WriteInt(h.spec.X).WriteInt(h.spec.Y)
	c.headEvent(h, protocols.HeadTransformEvent, "transform").WriteInt(h.spec.Transform)
	c.headEvent(h, protocols.HeadScaleEvent, "scale").WriteFixed(wire.FixedFloat(h.spec.Scale))
	if c.managerVersion >= 4 {
		c.headEvent(h, protocols.HeadAdaptiveSyncEvent, "adaptive_sync").WriteUint(h.spec.AdaptiveSync)
	}
}

func (c *Compositor) headEvent(h *head, op uint16, name string) *wire.Builder {
	b := wire.NewBuilder(h.id, op, "zwlr_output_head_v1."+name)
	c.send(b)
	return b
}

func (c *Compositor) modeEvent(id uint32, op uint16, name string) *wire.Builder {
	b := wire.NewBuilder(id, op, "zwlr_output_mode_v1."+name)
	c.send(b)
	return b
}

func (c *Compositor) current(h *head) uint32 {
	for _, id := range h.modes {
		if c.modes[id].Current {
			return id
		}
	}
	return 0
}

func (c *Compositor) preferred(h *head) uint32 {
	for _, id := range h.modes {
		if c.modes[id].Preferred {
			return id
		}
	}
	if len(h.modes) > 0 {
		return h.modes[0]
	}
	return 0
}
