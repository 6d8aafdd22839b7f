//go:build windows

package relay

import (
	"github.com/lixenwraith/inputrelay/gamepad"
	"github.com/lixenwraith/inputrelay/win32"
)

// systemGamepad is the default controller source
func systemGamepad() gamepad.Source {
	return win32.XInput{}
}
