package relay

import (
	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
)

// WndProc receives one platform message on the window goroutine
// Returns true when the message was handled and default platform processing must be skipped
// Never blocks: input is copied into the ring, and dropped if the ring is full
func (b *Backend) WndProc(m event.Message) bool {
	bd := b.bind.Load()
	if bd == nil || m.Window != bd.handle {
		return false
	}

	switch m.Code {
	case event.CodeActivateApp:
		b.queue.Write(m)
		return !b.cfg.InputWhileUnfocused

	case event.CodeLButtonDown, event.CodeLButtonDbl,
		event.CodeRButtonDown, event.CodeRButtonDbl,
		event.CodeMButtonDown, event.CodeMButtonDbl,
		event.CodeXButtonDown, event.CodeXButtonDbl,
		event.CodeLButtonUp, event.CodeRButtonUp, event.CodeMButtonUp, event.CodeXButtonUp,
		event.CodeMouseWheel, event.CodeMouseHWheel,
		event.CodeMouseMove, event.CodeMouseHover,
		event.CodeKeyDown, event.CodeSysKeyDown,
		event.CodeKeyUp, event.CodeSysKeyUp,
		event.CodeChar,
		event.CodeSize, event.CodeDeviceChange:
		b.queue.Write(m)
		return false

	case event.CodeSysCommand:
		// Swallow alt-key menu activation so Alt reaches the UI as a plain modifier
		return m.WParam&0xFFF0 == event.SCKeyMenu

	case event.CodeSetCursor:
		if event.LoWord(m.LParam) == event.HTClient && b.updateCursor.Load() {
			bd.window.SetCursor(input.Cursor(b.appliedCursor.Load()))
			return true
		}
		return false
	}

	if d, ok := b.directiveOf(m.Code); ok {
		return b.execute(bd, d, m)
	}
	return false
}
