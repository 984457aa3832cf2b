package protocols

import "github.com/bnema/wlout/internal/wire"

// GetRegistry encodes wl_display.get_registry.
func GetRegistry(registry ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(DisplayID), DisplayGetRegistry, "wl_display.get_registry").
		WriteNewID(uint32(registry))
}

// Sync encodes wl_display.sync.
func Sync(callback ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(DisplayID), DisplaySync, "wl_display.sync").
		WriteNewID(uint32(callback))
}

// Bind encodes wl_registry.bind. The new_id carries its interface and
// version inline since the request is untyped.
func Bind(registry ObjectID, name uint32, iface string, version uint32, id ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(registry), RegistryBind, "wl_registry.bind").
		WriteUint(name).
		WriteString(iface).
		WriteUint(version).
		WriteNewID(uint32(id))
}

func CreateConfiguration(manager, config ObjectID, serial uint32) *wire.Builder {
	return wire.NewBuilder(uint32(manager), ManagerCreateConfiguration, "zwlr_output_manager_v1.create_configuration").
		WriteNewID(uint32(config)).
		WriteUint(serial)
}

func StopManager(manager ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(manager), ManagerStop, "zwlr_output_manager_v1.stop")
}

func ReleaseHead(head ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(head), HeadRelease, "zwlr_output_head_v1.release")
}

func ReleaseMode(mode ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(mode), ModeRelease, "zwlr_output_mode_v1.release")
}

func EnableHead(config, configHead, head ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(config), ConfigurationEnableHead, "zwlr_output_configuration_v1.enable_head").
		WriteNewID(uint32(configHead)).
		WriteObject(uint32(head))
}

func DisableHead(config, head ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(config), ConfigurationDisableHead, "zwlr_output_configuration_v1.disable_head").
		WriteObject(uint32(head))
}

func ApplyConfiguration(config ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(config), ConfigurationApply, "zwlr_output_configuration_v1.apply")
}

// DryRunConfiguration encodes the test request: the compositor validates
// the configuration without applying it.
func DryRunConfiguration(config ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(config), ConfigurationTest, "zwlr_output_configuration_v1.test")
}

func DestroyConfiguration(config ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(config), ConfigurationDestroy, "zwlr_output_configuration_v1.destroy")
}

func SetMode(configHead, mode ObjectID) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetMode, "zwlr_output_configuration_head_v1.set_mode").
		WriteObject(uint32(mode))
}

// SetCustomMode takes the refresh rate in mHz; zero lets the compositor
// pick one.
func SetCustomMode(configHead ObjectID, width, height, refresh int32) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetCustomMode, "zwlr_output_configuration_head_v1.set_custom_mode").
		WriteInt(width).
		WriteInt(height).
		WriteInt(refresh)
}

func SetPosition(configHead ObjectID, x, y int32) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetPosition, "zwlr_output_configuration_head_v1.set_position").
		WriteInt(x).
		WriteInt(y)
}

func SetTransform(configHead ObjectID, transform int32) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetTransform, "zwlr_output_configuration_head_v1.set_transform").
		WriteInt(transform)
}

func SetScale(configHead ObjectID, scale float64) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetScale, "zwlr_output_configuration_head_v1.set_scale").
		WriteFixed(wire.FixedFloat(scale))
}

func SetAdaptiveSync(configHead ObjectID, state uint32) *wire.Builder {
	return wire.NewBuilder(uint32(configHead), ConfigurationHeadSetAdaptiveSync, "zwlr_output_configuration_head_v1.set_adaptive_sync").
		WriteUint(state)
}
