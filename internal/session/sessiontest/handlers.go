package sessiontest

import (
	"fmt"

	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/protocols"
	"github.com/bnema/wlout/internal/wire"
)

// Global names advertised by the registry.
const (
	managerGlobal          = 1
	seatGlobal             = 2
	duplicateManagerGlobal = 3
)

func (c *Compositor) handle(iface string, msg *wire.Message) error {
	switch iface {
	case protocols.DisplayInterface:
		return c.handleDisplay(msg)
	case protocols.RegistryInterface:
		return c.handleRegistry(msg)
	case protocols.OutputManagerInterface:
		return c.handleManager(msg)
	case protocols.OutputHeadInterface, protocols.OutputModeInterface:
		if msg.Op == protocols.HeadRelease {
			delete(c.objects, msg.Sender)
			return nil
		}
	case protocols.OutputConfigurationInterface:
		return c.handleConfiguration(msg)
	case protocols.OutputConfigurationHeadInterface:
		return c.handleConfigurationHead(msg)
	}
	return fmt.Errorf("unexpected %s request %d", iface, msg.Op)
}

func (c *Compositor) handleDisplay(msg *wire.Message) error {
	id := msg.ReadNewID()
	switch msg.Op {
	case protocols.DisplaySync:
		c.send(wire.NewBuilder(id, protocols.CallbackDoneEvent, "wl_callback.done").WriteUint(c.serial))
		c.send(wire.NewBuilder(uint32(protocols.DisplayID), protocols.DisplayDeleteIDEvent, "wl_display.delete_id").WriteUint(id))
		return nil
	case protocols.DisplayGetRegistry:
		c.objects[id] = protocols.RegistryInterface
		if c.ManagerVersion > 0 {
			c.global(id, managerGlobal, protocols.OutputManagerInterface, c.ManagerVersion)
		}
		c.global(id, seatGlobal, "wl_seat", 7)
		if c.ManagerVersion > 0 && c.DuplicateManager {
			c.global(id, duplicateManagerGlobal, protocols.OutputManagerInterface, c.ManagerVersion)
		}
		return nil
	}
	return fmt.Errorf("unexpected wl_display request %d", msg.Op)
}

func (c *Compositor) global(registry, name uint32, iface string, version uint32) {
	c.send(wire.NewBuilder(registry, protocols.RegistryGlobalEvent, "wl_registry.global").
		WriteUint(name).
		WriteString(iface).
		WriteUint(version))
}

func (c *Compositor) handleRegistry(msg *wire.Message) error {
	name := msg.ReadUint()
	iface := msg.ReadString()
	version := msg.ReadUint()
	id := msg.ReadNewID()
	if err := msg.Err(); err != nil {
		return err
	}

	c.objects[id] = iface
	if iface != protocols.OutputManagerInterface {
		return nil
	}
	if name != managerGlobal && name != duplicateManagerGlobal {
		return fmt.Errorf("invalid global %d", name)
	}
	if version > c.ManagerVersion {
		return fmt.Errorf("invalid version %d for %s", version, iface)
	}

	c.manager = id
	c.managerVersion = version
	for _, h := range c.heads {
		c.announceHead(h)
	}
	c.done()
	return nil
}

func (c *Compositor) handleManager(msg *wire.Message) error {
	switch msg.Op {
	case protocols.ManagerCreateConfiguration:
		id := msg.ReadNewID()
		serial := msg.ReadUint()
		c.objects[id] = protocols.OutputConfigurationInterface
		c.configs[id] = &configuration{
			serial:   serial,
			enabled:  make(map[uint32]*configHead),
			disabled: make(map[uint32]bool),
		}
		return msg.Err()
	case protocols.ManagerStop:
		c.send(wire.NewBuilder(msg.Sender, protocols.ManagerFinishedEvent, "zwlr_output_manager_v1.finished"))
		c.manager = 0
		return nil
	}
	return fmt.Errorf("unexpected manager request %d", msg.Op)
}

func (c *Compositor) handleConfiguration(msg *wire.Message) error {
	cfg, ok := c.configs[msg.Sender]
	if !ok {
		return fmt.Errorf("configuration %d already used", msg.Sender)
	}

	switch msg.Op {
	case protocols.ConfigurationEnableHead:
		id := msg.ReadNewID()
		head := msg.ReadObject()
		if err := c.configure(cfg, head); err != nil {
			return err
		}
		ch := &configHead{head: head}
		cfg.enabled[head] = ch
		c.configHeads[id] = ch
		c.objects[id] = protocols.OutputConfigurationHeadInterface
	case protocols.ConfigurationDisableHead:
		head := msg.ReadObject()
		if err := c.configure(cfg, head); err != nil {
			return err
		}
		cfg.disabled[head] = true
	case protocols.ConfigurationApply, protocols.ConfigurationTest:
		c.finish(msg.Sender, cfg, msg.Op == protocols.ConfigurationApply)
	case protocols.ConfigurationDestroy:
		delete(c.configs, msg.Sender)
		delete(c.objects, msg.Sender)
		c.send(wire.NewBuilder(uint32(protocols.DisplayID), protocols.DisplayDeleteIDEvent, "wl_display.delete_id").WriteUint(msg.Sender))
	default:
		return fmt.Errorf("unexpected configuration request %d", msg.Op)
	}
	return msg.Err()
}

func (c *Compositor) configure(cfg *configuration, head uint32) error {
	if c.head(head) == nil {
		return fmt.Errorf("invalid head %d", head)
	}
	if cfg.enabled[head] != nil || cfg.disabled[head] {
		return fmt.Errorf("head %d already configured", head)
	}
	cfg.order = append(cfg.order, head)
	return nil
}

func (c *Compositor) handleConfigurationHead(msg *wire.Message) error {
	ch := c.configHeads[msg.Sender]
	switch msg.Op {
	case protocols.ConfigurationHeadSetMode:
		mode := msg.ReadObject()
		if !c.head(ch.head).has(mode) {
			return fmt.Errorf("invalid mode %d", mode)
		}
		ch.mode = mode
	case protocols.ConfigurationHeadSetCustomMode:
		ch.custom = &ModeSpec{Width: msg.ReadInt(), Height: msg.ReadInt(), Refresh: msg.ReadInt()}
	case protocols.ConfigurationHeadSetPosition:
		ch.position = &[2]int32{msg.ReadInt(), msg.ReadInt()}
	case protocols.ConfigurationHeadSetTransform:
		t := msg.ReadInt()
		ch.transform = &t
	case protocols.ConfigurationHeadSetScale:
		s := msg.ReadFixed().Float()
		ch.scale = &s
	case protocols.ConfigurationHeadSetAdaptiveSync:
		if c.managerVersion < 4 {
			return fmt.Errorf("set_adaptive_sync needs version 4")
		}
		a := msg.ReadUint()
		ch.adaptiveSync = &a
	default:
		return fmt.Errorf("unexpected configuration head request %d", msg.Op)
	}
	return msg.Err()
}

func (c *Compositor) finish(id uint32, cfg *configuration, apply bool) {
	result := output.Succeeded
	if len(c.results) > 0 {
		result = c.results[0]
		c.results = c.results[1:]
	}
	if cfg.serial != c.serial {
		result = output.Cancelled
	}

	switch result {
	case output.Succeeded:
		c.send(wire.NewBuilder(id, protocols.ConfigurationSucceededEvent, "zwlr_output_configuration_v1.succeeded"))
		if apply {
			c.commit(cfg)
		}
	case output.Failed:
		c.send(wire.NewBuilder(id, protocols.ConfigurationFailedEvent, "zwlr_output_configuration_v1.failed"))
	default:
		c.send(wire.NewBuilder(id, protocols.ConfigurationCancelledEvent, "zwlr_output_configuration_v1.cancelled"))
	}
}

func (c *Compositor) commit(cfg *configuration) {
	for _, id := range cfg.order {
		h := c.head(id)
		if cfg.disabled[id] {
			h.spec.Enabled = false
			c.setCurrent(h, 0)
			c.sendHeadState(h)
			continue
		}

		ch := cfg.enabled[id]
		h.spec.Enabled = true
		switch {
		case ch.mode != 0:
			c.setCurrent(h, ch.mode)
		case ch.custom != nil:
			c.setCurrent(h, c.customMode(h, *ch.custom))
		case c.current(h) == 0:
			c.setCurrent(h, c.preferred(h))
		}
		if ch.position != nil {
			h.spec.X, h.spec.Y = ch.position[0], ch.position[1]
		}
		if ch.transform != nil {
			h.spec.Transform = *ch.transform
		}
		if ch.scale != nil {
			h.spec.Scale = *ch.scale
		}
		if ch.adaptiveSync != nil {
			h.spec.AdaptiveSync = *ch.adaptiveSync
		}
		c.sendHeadState(h)
	}
	c.serial++
	c.done()
}

// customMode returns the head's mode matching m, advertising a new one
// if needed.
func (c *Compositor) customMode(h *head, m ModeSpec) uint32 {
	if m.Refresh == 0 {
		m.Refresh = 60000
	}
	for _, id := range h.modes {
		mode := c.modes[id]
		if mode.Width == m.Width && mode.Height == m.Height && mode.Refresh == m.Refresh {
			return id
		}
	}
	id := c.addMode(ModeSpec{Width: m.Width, Height: m.Height, Refresh: m.Refresh})
	h.modes = append(h.modes, id)
	c.announceMode(h, id)
	return id
}

func (c *Compositor) setCurrent(h *head, current uint32) {
	for _, id := range h.modes {
		c.modes[id].Current = id == current
	}
}

func (c *Compositor) head(id uint32) *head {
	for _, h := range c.heads {
		if h.id == id {
			return h
		}
	}
	return nil
}

func (h *head) has(mode uint32) bool {
	for _, id := range h.modes {
		if id == mode {
			return true
		}
	}
	return false
}

func (c *Compositor) done() {
	c.send(wire.NewBuilder(c.manager, protocols.ManagerDoneEvent, "zwlr_output_manager_v1.done").WriteUint(c.serial))
}
