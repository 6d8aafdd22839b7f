package win32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/inputrelay/gamepad"
)

func TestXInputLayout(t *testing.T) {
	assert.Equal(t, uintptr(12), unsafe.Sizeof(xinputGamepad{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(xinputState{}))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(xinputCapabilities{}))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(xinputState{}.gamepad))
}

func TestXInputPad(t *testing.T) {
	g := xinputGamepad{
		buttons:      uint16(gamepad.ButtonA | gamepad.ButtonDpadUp),
		leftTrigger:  10,
		rightTrigger: 20,
		thumbLX:      -32768,
		thumbLY:      32767,
		thumbRX:      1,
		thumbRY:      -1,
	}
	want := gamepad.Pad{
		Buttons:      gamepad.ButtonA | gamepad.ButtonDpadUp,
		LeftTrigger:  10,
		RightTrigger: 20,
		ThumbLX:      -32768,
		ThumbLY:      32767,
		ThumbRX:      1,
		ThumbRY:      -1,
	}
	assert.Equal(t, want, g.pad())
}
