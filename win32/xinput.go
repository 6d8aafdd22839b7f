package win32

import "github.com/lixenwraith/inputrelay/gamepad"

// XINPUT_FLAG_GAMEPAD
const xinputFlagGamepad = 0x00000001

// xinputGamepad mirrors XINPUT_GAMEPAD
type xinputGamepad struct {
	buttons      uint16
	leftTrigger  uint8
	rightTrigger uint8
	thumbLX      int16
	thumbLY      int16
	thumbRX      int16
	thumbRY      int16
}

// xinputState mirrors XINPUT_STATE
type xinputState struct {
	packetNumber uint32
	gamepad      xinputGamepad
}

// xinputCapabilities mirrors XINPUT_CAPABILITIES
type xinputCapabilities struct {
	devType   uint8
	subType   uint8
	flags     uint16
	gamepad   xinputGamepad
	vibration [2]uint16
}

func (g xinputGamepad) pad() gamepad.Pad {
	return gamepad.Pad{
		Buttons:      gamepad.Button(g.buttons),
		LeftTrigger:  g.leftTrigger,
		RightTrigger: g.rightTrigger,
		ThumbLX:      g.thumbLX,
		ThumbLY:      g.thumbLY,
		ThumbRX:      g.thumbRX,
		ThumbRY:      g.thumbRY,
	}
}
