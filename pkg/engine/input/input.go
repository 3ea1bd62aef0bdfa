// Package input implements the client's layered input handling: raw device
// events are debounced, mapped through rebindable bindings, and delivered to
// the game loop as high-level intents.
package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes maps Ebiten keys to raw binding codes.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeyEqual:      "=",
	ebiten.KeyMinus:      "-",
	ebiten.KeyO:          "o",
	ebiten.KeyA:          "a",
	ebiten.KeyF12:        "f12",
	ebiten.KeyF9:         "f9",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// buttonCodes maps standard gamepad buttons to raw binding codes.
var buttonCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:    "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom: "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:   "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:  "gamepad_dpad_right",
}

// Poll reads the just-pressed keys and gamepad buttons for this tick and
// returns the resulting intents, dropping anything unbound.
func Poll() []Intent {
	var intents []Intent

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			intents = appendIntent(intents, RawInput{Device: DeviceKeyboard, Code: code, Timestamp: time.Now()})
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range buttonCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				intents = appendIntent(intents, RawInput{Device: DeviceGamepad, Code: code, Timestamp: time.Now()})
			}
		}
	}

	return intents
}

func appendIntent(intents []Intent, raw RawInput) []Intent {
	intent := MapToIntent(NewDebouncedInput(raw))
	if intent.Action == ActionNone {
		return intents
	}
	return append(intents, intent)
}
