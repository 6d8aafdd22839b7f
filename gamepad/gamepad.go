// Package gamepad maps controller state onto UI navigation inputs
package gamepad

import "github.com/lixenwraith/inputrelay/input"

// Button is a controller button bit (XInput layout)
type Button uint16

const (
	ButtonDpadUp        Button = 0x0001
	ButtonDpadDown      Button = 0x0002
	ButtonDpadLeft      Button = 0x0004
	ButtonDpadRight     Button = 0x0008
	ButtonStart         Button = 0x0010
	ButtonBack          Button = 0x0020
	ButtonLeftThumb     Button = 0x0040
	ButtonRightThumb    Button = 0x0080
	ButtonLeftShoulder  Button = 0x0100
	ButtonRightShoulder Button = 0x0200
	ButtonA             Button = 0x1000
	ButtonB             Button = 0x2000
	ButtonX             Button = 0x4000
	ButtonY             Button = 0x8000
)

// LeftThumbDeadzone is the stick magnitude below which motion is ignored
const LeftThumbDeadzone = 7849

// Pad is one live controller snapshot
type Pad struct {
	Buttons      Button
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// Source queries controller hardware
// Connected is expensive when nothing is attached; callers invoke it only after a device change
type Source interface {
	Connected(index int) bool
	State(index int) (Pad, bool)
}

// None is a Source with no controller attached
type None struct{}

func (None) Connected(int) bool    { return false }
func (None) State(int) (Pad, bool) { return Pad{}, false }

var buttonMap = [...]struct {
	nav    input.NavInput
	button Button
}{
	{input.NavActivate, ButtonA},              // Cross / A
	{input.NavCancel, ButtonB},                // Circle / B
	{input.NavInputMenu, ButtonX},             // Square / X
	{input.NavInputText, ButtonY},             // Triangle / Y
	{input.NavDpadLeft, ButtonDpadLeft},       // D-Pad Left
	{input.NavDpadRight, ButtonDpadRight},     // D-Pad Right
	{input.NavDpadUp, ButtonDpadUp},           // D-Pad Up
	{input.NavDpadDown, ButtonDpadDown},       // D-Pad Down
	{input.NavFocusPrev, ButtonLeftShoulder},  // L1 / LB
	{input.NavFocusNext, ButtonRightShoulder}, // R1 / RB
	{input.NavTweakSlow, ButtonLeftShoulder},  // L1 / LB
	{input.NavTweakFast, ButtonRightShoulder}, // R1 / RB
}

// Map writes p onto nav; nav is expected to be zeroed by the caller
func Map(p Pad, nav *[input.NavInputCount]float32) {
	for _, m := range buttonMap {
		if p.Buttons&m.button != 0 {
			nav[m.nav] = 1
		} else {
			nav[m.nav] = 0
		}
	}
	mapAnalog(nav, input.NavLStickLeft, p.ThumbLX, -LeftThumbDeadzone, -32768)
	mapAnalog(nav, input.NavLStickRight, p.ThumbLX, +LeftThumbDeadzone, +32767)
	mapAnalog(nav, input.NavLStickUp, p.ThumbLY, +LeftThumbDeadzone, +32767)
	mapAnalog(nav, input.NavLStickDown, p.ThumbLY, -LeftThumbDeadzone, -32767)
}

// mapAnalog normalizes v between v0 (deadzone edge) and v1 (full travel), keeping the larger of old and new
func mapAnalog(nav *[input.NavInputCount]float32, n input.NavInput, v int16, v0, v1 float32) {
	vn := (float32(v) - v0) / (v1 - v0)
	if vn > 1 {
		vn = 1
	}
	if vn > 0 && nav[n] < vn {
		nav[n] = vn
	}
}
