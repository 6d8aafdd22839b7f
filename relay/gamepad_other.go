//go:build !windows

package relay

import "github.com/lixenwraith/inputrelay/gamepad"

// systemGamepad is the default controller source; no native controller API outside windows
func systemGamepad() gamepad.Source {
	return gamepad.None{}
}
