package win32

import "github.com/lixenwraith/inputrelay/input"

// Stock cursor resource identifiers (IDC_*)
const (
	idcArrow    = 32512
	idcIBeam    = 32513
	idcSizeNWSE = 32642
	idcSizeNESW = 32643
	idcSizeWE   = 32644
	idcSizeNS   = 32645
	idcSizeAll  = 32646
	idcNo       = 32648
	idcHand     = 32649
)

// cursorResource returns the stock cursor for c; 0 hides the pointer
func cursorResource(c input.Cursor) uint16 {
	switch c {
	case input.CursorNone:
		return 0
	case input.CursorTextInput:
		return idcIBeam
	case input.CursorResizeAll:
		return idcSizeAll
	case input.CursorResizeEW:
		return idcSizeWE
	case input.CursorResizeNS:
		return idcSizeNS
	case input.CursorResizeNESW:
		return idcSizeNESW
	case input.CursorResizeNWSE:
		return idcSizeNWSE
	case input.CursorHand:
		return idcHand
	case input.CursorNotAllowed:
		return idcNo
	default:
		return idcArrow
	}
}

// dpiScale converts a dots-per-inch value to a scale factor against the 96 DPI baseline
func dpiScale(dpi uint32) float32 {
	if dpi == 0 {
		return 1
	}
	return float32(dpi) / 96
}
