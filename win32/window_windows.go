//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	imm32  = windows.NewLazySystemDLL("imm32.dll")

	procPostMessageW   = user32.NewProc("PostMessageW")
	procGetClientRect  = user32.NewProc("GetClientRect")
	procGetCapture     = user32.NewProc("GetCapture")
	procSetCapture     = user32.NewProc("SetCapture")
	procReleaseCapture = user32.NewProc("ReleaseCapture")
	procClientToScreen = user32.NewProc("ClientToScreen")
	procSetCursorPos   = user32.NewProc("SetCursorPos")
	procLoadCursorW    = user32.NewProc("LoadCursorW")
	procSetCursor      = user32.NewProc("SetCursor")

	procImmGetContext           = imm32.NewProc("ImmGetContext")
	procImmSetCompositionWindow = imm32.NewProc("ImmSetCompositionWindow")
	procImmReleaseContext       = imm32.NewProc("ImmReleaseContext")
)

// CFS_FORCE_POSITION
const cfsForcePosition = 0x0020

type point struct {
	x, y int32
}

// compositionForm mirrors COMPOSITIONFORM
type compositionForm struct {
	style uint32
	pos   point
	area  windows.Rect
}

// Window is a relay window over an HWND owned by the calling application
type Window struct {
	hwnd windows.HWND
}

// NewWindow wraps hwnd
func NewWindow(hwnd windows.HWND) *Window {
	return &Window{hwnd: hwnd}
}

// Message packs a window procedure call for relay.Backend.WndProc
func Message(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) event.Message {
	return event.Message{Window: uintptr(hwnd), Code: event.Code(msg), WParam: wParam, LParam: lParam}
}

// Handle implements relay.Window
func (w *Window) Handle() uintptr {
	return uintptr(w.hwnd)
}

// PostMessage implements relay.Window
func (w *Window) PostMessage(code uint32, wParam, lParam uintptr) bool {
	r, _, _ := procPostMessageW.Call(uintptr(w.hwnd), uintptr(code), wParam, lParam)
	return r != 0
}

// ClientSize implements relay.Window
func (w *Window) ClientSize() (int, int) {
	var rc windows.Rect
	r, _, _ := procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return 0, 0
	}
	return int(rc.Right - rc.Left), int(rc.Bottom - rc.Top)
}

// Capture implements relay.Window
func (w *Window) Capture() uintptr {
	r, _, _ := procGetCapture.Call()
	return r
}

// SetCapture implements relay.Window
func (w *Window) SetCapture() {
	procSetCapture.Call(uintptr(w.hwnd))
}

// ReleaseCapture implements relay.Window
func (w *Window) ReleaseCapture() {
	procReleaseCapture.Call()
}

// SetCursorPos implements relay.Window; x, y are client coordinates
func (w *Window) SetCursorPos(x, y int) {
	pt := point{x: int32(x), y: int32(y)}
	if r, _, _ := procClientToScreen.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&pt))); r == 0 {
		return
	}
	procSetCursorPos.Call(uintptr(pt.x), uintptr(pt.y))
}

// SetCursor implements relay.Window
func (w *Window) SetCursor(c input.Cursor) {
	id := cursorResource(c)
	if id == 0 {
		procSetCursor.Call(0)
		return
	}
	h, _, _ := procLoadCursorW.Call(0, uintptr(id))
	procSetCursor.Call(h)
}

// SetIMEPosition implements relay.Window
func (w *Window) SetIMEPosition(x, y int) {
	himc, _, _ := procImmGetContext.Call(uintptr(w.hwnd))
	if himc == 0 {
		return
	}
	cf := compositionForm{style: cfsForcePosition, pos: point{x: int32(x), y: int32(y)}}
	procImmSetCompositionWindow.Call(himc, uintptr(unsafe.Pointer(&cf)))
	procImmReleaseContext.Call(uintptr(w.hwnd), himc)
}
