package relay

import "github.com/lixenwraith/inputrelay/input"

// Window is the platform surface bound to a Backend
//
// Thread affinity:
//   - Handle, PostMessage, ClientSize: any goroutine
//   - Capture, SetCapture, ReleaseCapture, SetCursorPos, SetCursor, SetIMEPosition:
//     only the goroutine that owns the window (the pump), reached through WndProc
type Window interface {
	// Handle identifies the window; messages from other sources are ignored
	Handle() uintptr

	// PostMessage queues a message on the window's own FIFO and returns immediately
	PostMessage(code uint32, wParam, lParam uintptr) bool

	// ClientSize returns the drawable area; may race a concurrent resize
	ClientSize() (width, height int)

	// Capture returns the handle currently holding pointer capture, 0 for none
	Capture() uintptr
	SetCapture()
	ReleaseCapture()

	// SetCursorPos moves the OS pointer to client coordinates
	SetCursorPos(x, y int)

	// SetCursor applies a pointer shape; CursorNone hides the pointer
	SetCursor(c input.Cursor)

	// SetIMEPosition places the input-method composition window at client coordinates
	SetIMEPosition(x, y int)
}

// binding is the immutable window association published to the pump goroutine
type binding struct {
	window Window
	handle uintptr
}
