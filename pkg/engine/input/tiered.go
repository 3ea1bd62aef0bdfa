package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high-level intent in the client.
type Action int

const (
	ActionNone Action = iota

	// Camera movement
	ActionScrollNorth
	ActionScrollSouth
	ActionScrollWest
	ActionScrollEast

	// View controls
	ActionZoomIn
	ActionZoomOut
	ActionToggleLighting
	ActionToggleAnimation

	// Meta
	ActionScreenshot
	ActionMapDump
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the layer-1 event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the layer-2 representation after deduplication. Ebiten's
// just-pressed predicates already debounce for us, but the distinct type
// keeps the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (layer-3 bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Camera scrolling (arrows and Vim keys)
	"arrow_up":    ActionScrollNorth,
	"k":           ActionScrollNorth,
	"arrow_down":  ActionScrollSouth,
	"j":           ActionScrollSouth,
	"arrow_left":  ActionScrollWest,
	"h":           ActionScrollWest,
	"arrow_right": ActionScrollEast,
	"l":           ActionScrollEast,

	// Gamepad scrolling
	"gamepad_dpad_up":    ActionScrollNorth,
	"gamepad_dpad_down":  ActionScrollSouth,
	"gamepad_dpad_left":  ActionScrollWest,
	"gamepad_dpad_right": ActionScrollEast,

	// Zoom (fixed bindings, not rebindable)
	"=": ActionZoomIn,
	"+": ActionZoomIn,
	"-": ActionZoomOut,

	// View toggles
	"o": ActionToggleLighting,
	"a": ActionToggleAnimation,

	// Developer tools
	"f12": ActionScreenshot,
	"f9":  ActionMapDump,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionScrollNorth:
		return "Scroll North"
	case ActionScrollSouth:
		return "Scroll South"
	case ActionScrollWest:
		return "Scroll West"
	case ActionScrollEast:
		return "Scroll East"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionToggleLighting:
		return "Toggle Lighting"
	case ActionToggleAnimation:
		return "Toggle Tile Animation"
	case ActionScreenshot:
		return "Screenshot"
	case ActionMapDump:
		return "Map Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
