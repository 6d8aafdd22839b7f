//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/inputrelay/gamepad"
)

var (
	xinput = windows.NewLazySystemDLL("xinput1_4.dll")

	procXInputGetCapabilities = xinput.NewProc("XInputGetCapabilities")
	procXInputGetState        = xinput.NewProc("XInputGetState")
)

// XInput is a gamepad.Source over the system XInput runtime
// Reports nothing connected when xinput1_4.dll is unavailable
type XInput struct{}

// Connected implements gamepad.Source
func (XInput) Connected(index int) bool {
	if procXInputGetCapabilities.Find() != nil {
		return false
	}
	var caps xinputCapabilities
	r, _, _ := procXInputGetCapabilities.Call(uintptr(index), xinputFlagGamepad, uintptr(unsafe.Pointer(&caps)))
	return r == uintptr(windows.ERROR_SUCCESS)
}

// State implements gamepad.Source
func (XInput) State(index int) (gamepad.Pad, bool) {
	if procXInputGetState.Find() != nil {
		return gamepad.Pad{}, false
	}
	var st xinputState
	r, _, _ := procXInputGetState.Call(uintptr(index), uintptr(unsafe.Pointer(&st)))
	if r != uintptr(windows.ERROR_SUCCESS) {
		return gamepad.Pad{}, false
	}
	return st.gamepad.pad(), true
}

var _ gamepad.Source = XInput{}
