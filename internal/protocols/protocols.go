// Package protocols binds the parts of the Wayland core protocol and of
// wlr-output-management-unstable-v1 that wlout needs. Inbound messages
// are decoded into Event values; requests are returned as wire.Builders
// ready to be written to the connection.
package protocols

import "fmt"

// ObjectID is a protocol object identity. It is assigned by the client
// for objects it creates and by the compositor for heads and modes.
type ObjectID uint32

func (id ObjectID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}

// DisplayID is the wl_display singleton, always object 1.
const DisplayID ObjectID = 1

// Protocol interface names
const (
	DisplayInterface                 = "wl_display"
	RegistryInterface                = "wl_registry"
	CallbackInterface                = "wl_callback"
	OutputManagerInterface           = "zwlr_output_manager_v1"
	OutputHeadInterface              = "zwlr_output_head_v1"
	OutputModeInterface              = "zwlr_output_mode_v1"
	OutputConfigurationInterface     = "zwlr_output_configuration_v1"
	OutputConfigurationHeadInterface = "zwlr_output_configuration_head_v1"
)

// OutputManagerVersion is the highest zwlr_output_manager_v1 version
// wlout understands.
const OutputManagerVersion = 4

// Request opcodes
const (
	DisplaySync        = 0
	DisplayGetRegistry = 1

	RegistryBind = 0

	ManagerCreateConfiguration = 0
	ManagerStop                = 1

	HeadRelease = 0
	ModeRelease = 0

	ConfigurationEnableHead  = 0
	ConfigurationDisableHead = 1
	ConfigurationApply       = 2
	ConfigurationTest        = 3
	ConfigurationDestroy     = 4

	ConfigurationHeadSetMode         = 0
	ConfigurationHeadSetCustomMode   = 1
	ConfigurationHeadSetPosition     = 2
	ConfigurationHeadSetTransform    = 3
	ConfigurationHeadSetScale        = 4
	ConfigurationHeadSetAdaptiveSync = 5
)

// Event opcodes
const (
	DisplayErrorEvent    = 0
	DisplayDeleteIDEvent = 1

	RegistryGlobalEvent       = 0
	RegistryGlobalRemoveEvent = 1

	CallbackDoneEvent = 0

	ManagerHeadEvent     = 0
	ManagerDoneEvent     = 1
	ManagerFinishedEvent = 2

	HeadNameEvent         = 0
	HeadDescriptionEvent  = 1
	HeadPhysicalSizeEvent = 2
	HeadModeEvent         = 3
	HeadEnabledEvent      = 4
	HeadCurrentModeEvent  = 5
	HeadPositionEvent     = 6
	HeadTransformEvent    = 7
	HeadScaleEvent        = 8
	HeadFinishedEvent     = 9
	HeadMakeEvent         = 10
	HeadModelEvent        = 11
	HeadSerialNumberEvent = 12
	HeadAdaptiveSyncEvent = 13

	ModeSizeEvent      = 0
	ModeRefreshEvent   = 1
	ModePreferredEvent = 2
	ModeFinishedEvent  = 3

	ConfigurationSucceededEvent = 0
	ConfigurationFailedEvent    = 1
	ConfigurationCancelledEvent = 2
)

// FirstServerID is the lowest identity the compositor allocates.
const FirstServerID ObjectID = 0xff000000
