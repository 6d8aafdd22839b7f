package relay

import (
	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
)

// Directive is a request from the frame loop for an OS call only the window goroutine may make
// Directives travel on the window's own message FIFO as DirectiveBase+Directive
type Directive uint32

const (
	DirectiveNone Directive = iota
	DirectiveMouseCapture
	DirectiveSetMousePos
	DirectiveSetMouseCursor
	DirectiveSetIMEPos
)

// MouseCapture WParam values
const (
	CaptureSet     = 1
	CaptureRelease = 2
)

// String returns human-readable directive name
func (d Directive) String() string {
	switch d {
	case DirectiveNone:
		return "None"
	case DirectiveMouseCapture:
		return "MouseCapture"
	case DirectiveSetMousePos:
		return "SetMousePos"
	case DirectiveSetMouseCursor:
		return "SetMouseCursor"
	case DirectiveSetIMEPos:
		return "SetIMEPos"
	default:
		return "Unknown"
	}
}

// Code returns the message code of d under the configured base
func (b *Backend) Code(d Directive) event.Code {
	return event.Code(b.cfg.DirectiveBase + uint32(d))
}

// directiveOf maps a message code back to a directive
func (b *Backend) directiveOf(c event.Code) (Directive, bool) {
	if uint32(c) < b.cfg.DirectiveBase {
		return 0, false
	}
	d := Directive(uint32(c) - b.cfg.DirectiveBase)
	if d > DirectiveSetIMEPos {
		return 0, false
	}
	return d, true
}

// Cursor shapes travel by value, offset so CursorNone encodes as 0
func encodeCursor(c input.Cursor) uintptr {
	return uintptr(int(c) - int(input.CursorNone))
}

func decodeCursor(w uintptr) input.Cursor {
	return input.Cursor(int(w) + int(input.CursorNone))
}

// post sends a directive to the bound window; no acknowledgement, no retry
func (b *Backend) post(d Directive, wParam, lParam uintptr) {
	bd := b.bind.Load()
	if bd == nil {
		return
	}
	if !bd.window.PostMessage(uint32(b.Code(d)), wParam, lParam) {
		b.log.Debug().Stringer("directive", d).Msg("directive post rejected")
		return
	}
	b.directives.Add(1)
}

func (b *Backend) postCapture(mode uintptr) {
	b.post(DirectiveMouseCapture, mode, 0)
}

// SetIMEPosition requests the composition window at client coordinates
// Installed as IO.ImeSetInputScreenPosFn while initialized; call from the frame goroutine
func (b *Backend) SetIMEPosition(x, y int) {
	b.post(DirectiveSetIMEPos, 0, event.MakeLParam(x, y))
}

// execute performs a directive on the window goroutine
// Capture calls are guarded so repeated or stale directives are harmless
func (b *Backend) execute(bd *binding, d Directive, m event.Message) bool {
	w := bd.window
	switch d {
	case DirectiveMouseCapture:
		switch m.WParam {
		case CaptureSet:
			if w.Capture() == 0 {
				w.SetCapture()
			}
		case CaptureRelease:
			if w.Capture() == bd.handle {
				w.ReleaseCapture()
			}
		}
		return false
	case DirectiveSetMousePos:
		w.SetCursorPos(event.XLParam(m.LParam), event.YLParam(m.LParam))
		return false
	case DirectiveSetMouseCursor:
		c := decodeCursor(m.WParam)
		b.appliedCursor.Store(int32(c))
		w.SetCursor(c)
		return true
	case DirectiveSetIMEPos:
		w.SetIMEPosition(event.XLParam(m.LParam), event.YLParam(m.LParam))
		return false
	}
	return false
}
