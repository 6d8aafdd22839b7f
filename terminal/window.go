package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
)

var lastHandle atomic.Uintptr

// Window presents a tcell screen as a relay window
// Coordinates are character cells. Handle, PostMessage and ClientSize are safe from any
// goroutine; the remaining methods run on the pump goroutine only
type Window struct {
	screen tcell.Screen
	handle uintptr

	// Pump goroutine only
	capture uintptr
	cursor  input.Cursor
	imeX    int
	imeY    int
	imeSet  bool
}

// NewWindow wraps an initialized screen
func NewWindow(screen tcell.Screen) *Window {
	return &Window{
		screen: screen,
		handle: lastHandle.Add(1),
		cursor: input.CursorArrow,
	}
}

// Handle implements relay.Window
func (w *Window) Handle() uintptr {
	return w.handle
}

// Screen returns the wrapped screen for rendering
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// PostMessage implements relay.Window
// The message shares the terminal event FIFO with input, so it is ordered after input already queued
func (w *Window) PostMessage(code uint32, wParam, lParam uintptr) bool {
	m := event.Message{Window: w.handle, Code: event.Code(code), WParam: wParam, LParam: lParam}
	return w.screen.PostEvent(tcell.NewEventInterrupt(m)) == nil
}

// ClientSize implements relay.Window
func (w *Window) ClientSize() (int, int) {
	return w.screen.Size()
}

// Capture implements relay.Window
// Terminals keep reporting drag motion while a button is held, so capture is bookkeeping only
func (w *Window) Capture() uintptr {
	return w.capture
}

// SetCapture implements relay.Window
func (w *Window) SetCapture() {
	w.capture = w.handle
}

// ReleaseCapture implements relay.Window
func (w *Window) ReleaseCapture() {
	w.capture = 0
}

// SetCursorPos implements relay.Window
// A terminal cannot warp the pointer; the position is fed back as a synthetic move
func (w *Window) SetCursorPos(x, y int) {
	_ = w.screen.PostEvent(tcell.NewEventInterrupt(pointerWarp{x: x, y: y}))
}

// SetCursor implements relay.Window
// The pointer shape is rendered as the terminal caret style
func (w *Window) SetCursor(c input.Cursor) {
	w.cursor = c
	if c == input.CursorNone {
		w.screen.HideCursor()
		return
	}
	w.screen.SetCursorStyle(cursorStyle(c))
	if w.imeSet {
		w.screen.ShowCursor(w.imeX, w.imeY)
	}
}

// SetIMEPosition implements relay.Window
// Terminal input methods compose at the caret, so the caret is moved there
func (w *Window) SetIMEPosition(x, y int) {
	w.imeX, w.imeY, w.imeSet = x, y, true
	if w.cursor != input.CursorNone {
		w.screen.ShowCursor(x, y)
	}
}

func cursorStyle(c input.Cursor) tcell.CursorStyle {
	switch c {
	case input.CursorTextInput:
		return tcell.CursorStyleSteadyBar
	case input.CursorResizeAll, input.CursorResizeNS, input.CursorResizeEW,
		input.CursorResizeNESW, input.CursorResizeNWSE:
		return tcell.CursorStyleSteadyUnderline
	case input.CursorNotAllowed:
		return tcell.CursorStyleBlinkingBlock
	case input.CursorHand:
		return tcell.CursorStyleBlinkingUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
