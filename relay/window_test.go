package relay

import (
	"sync"

	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
)

// fakeWindow records posted directives and OS calls
type fakeWindow struct {
	handle uintptr

	mu        sync.Mutex
	posted    []event.Message
	rejectAll bool
	width     int
	height    int
	capture   uintptr
	cursor    input.Cursor
	cursorSet int
	cursorPos [2]int
	imePos    [2]int
	calls     []string
}

func newFakeWindow(handle uintptr) *fakeWindow {
	return &fakeWindow{handle: handle, width: 640, height: 480, cursor: input.CursorArrow}
}

func (w *fakeWindow) Handle() uintptr { return w.handle }

func (w *fakeWindow) PostMessage(code uint32, wParam, lParam uintptr) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rejectAll {
		return false
	}
	w.posted = append(w.posted, event.Message{Window: w.handle, Code: event.Code(code), WParam: wParam, LParam: lParam})
	return true
}

func (w *fakeWindow) ClientSize() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *fakeWindow) Capture() uintptr {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture
}

func (w *fakeWindow) SetCapture() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.capture = w.handle
	w.calls = append(w.calls, "SetCapture")
}

func (w *fakeWindow) ReleaseCapture() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.capture = 0
	w.calls = append(w.calls, "ReleaseCapture")
}

func (w *fakeWindow) SetCursorPos(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursorPos = [2]int{x, y}
	w.calls = append(w.calls, "SetCursorPos")
}

func (w *fakeWindow) SetCursor(c input.Cursor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursor = c
	w.cursorSet++
	w.calls = append(w.calls, "SetCursor")
}

func (w *fakeWindow) SetIMEPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.imePos = [2]int{x, y}
	w.calls = append(w.calls, "SetIMEPosition")
}

// takePosted returns and clears the posted directives
func (w *fakeWindow) takePosted() []event.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := w.posted
	w.posted = nil
	return p
}

func (w *fakeWindow) takeCalls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := w.calls
	w.calls = nil
	return c
}

// pump delivers posted directives back through WndProc, as the window goroutine would
func pump(b *Backend, w *fakeWindow) []event.Message {
	posted := w.takePosted()
	for _, m := range posted {
		b.WndProc(m)
	}
	return posted
}

// directivesOf filters posted messages down to one directive kind
func directivesOf(b *Backend, msgs []event.Message, d Directive) []event.Message {
	var out []event.Message
	for _, m := range msgs {
		if m.Code == b.Code(d) {
			out = append(out, m)
		}
	}
	return out
}
