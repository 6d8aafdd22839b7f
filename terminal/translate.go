package terminal

import (
	"unicode"
	"unicode/utf16"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputrelay/event"
)

// Scan codes attached to synthetic modifier messages
const (
	scanControl = 0x1D
	scanAlt     = 0x38
)

// Pointer buttons in IO.MouseDown order
var buttonOrder = [...]struct {
	mask tcell.ButtonMask
	down event.Code
	up   event.Code
	x    uintptr
}{
	{tcell.ButtonPrimary, event.CodeLButtonDown, event.CodeLButtonUp, 0},
	{tcell.ButtonSecondary, event.CodeRButtonDown, event.CodeRButtonUp, 0},
	{tcell.ButtonMiddle, event.CodeMButtonDown, event.CodeMButtonUp, 0},
	{tcell.Button4, event.CodeXButtonDown, event.CodeXButtonUp, event.XButton1 << 16},
	{tcell.Button5, event.CodeXButtonDown, event.CodeXButtonUp, event.XButton2 << 16},
}

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle | tcell.Button4 | tcell.Button5

// keyRelease is posted after KeyReleaseDelay to end a synthetic key press
type keyRelease struct {
	gen uint64
}

// pointerWarp is posted by SetCursorPos to move the tracked pointer
type pointerWarp struct {
	x, y int
}

// translator turns tcell events into platform messages
// Pump goroutine only
type translator struct {
	handle uintptr

	buttons tcell.ButtonMask
	x, y    int
	hasPos  bool

	// Terminals report key presses only; the matching releases are held until
	// the next key event or a keyRelease with the current generation
	held []event.Message
	gen  uint64

	// schedule arranges a keyRelease for gen; nil leaves releases to the caller
	schedule func(gen uint64)

	out []event.Message
}

func newTranslator(handle uintptr) *translator {
	return &translator{
		handle: handle,
		held:   make([]event.Message, 0, 8),
		out:    make([]event.Message, 0, 16),
	}
}

// translate returns the messages for ev; the slice is reused by the next call
func (t *translator) translate(ev tcell.Event) []event.Message {
	t.out = t.out[:0]

	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.key(ev)
	case *tcell.EventMouse:
		t.mouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		t.emit(event.CodeSize, 0, event.MakeLParam(w, h))
	case *tcell.EventFocus:
		t.release()
		var active uintptr
		if ev.Focused {
			active = 1
		}
		t.emit(event.CodeActivateApp, active, 0)
	case *tcell.EventInterrupt:
		t.interrupt(ev.Data())
	}

	return t.out
}

func (t *translator) emit(code event.Code, wParam, lParam uintptr) {
	t.out = append(t.out, event.Message{Window: t.handle, Code: code, WParam: wParam, LParam: lParam})
}

func (t *translator) interrupt(data any) {
	switch d := data.(type) {
	case event.Message:
		// Directive posted through the window FIFO
		t.out = append(t.out, d)
	case keyRelease:
		if d.gen == t.gen {
			t.release()
		}
	case pointerWarp:
		t.x, t.y, t.hasPos = d.x, d.y, true
		t.emit(event.CodeMouseMove, 0, event.MakeLParam(d.x, d.y))
	}
}

// release flushes held key releases
func (t *translator) release() {
	if len(t.held) == 0 {
		return
	}
	t.out = append(t.out, t.held...)
	t.held = t.held[:0]
}

// key emits modifier presses, the key press, its text, and holds the releases
func (t *translator) key(ev *tcell.EventKey) {
	t.release()

	vk, mod := keyCode(ev.Key(), ev.Rune(), ev.Modifiers())
	alt := mod&tcell.ModAlt != 0
	downCode, upCode := event.CodeKeyDown, event.CodeKeyUp
	if alt {
		downCode, upCode = event.CodeSysKeyDown, event.CodeSysKeyUp
	}

	type modKey struct {
		mask tcell.ModMask
		vk   uint16
		scan uint8
	}
	mods := [...]modKey{
		{tcell.ModShift, event.VKShift, event.ScanLShift},
		{tcell.ModCtrl, event.VKControl, scanControl},
		{tcell.ModAlt, event.VKMenu, scanAlt},
	}

	for _, m := range mods {
		if mod&m.mask != 0 {
			t.emit(downCode, uintptr(m.vk), event.KeyLParam(m.scan, false))
		}
	}

	if vk != 0 {
		t.emit(downCode, uintptr(vk), 0)
	}

	// Text only for plain or shifted runes; ctrl/alt combinations are commands
	if ev.Key() == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		r := ev.Rune()
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			t.emit(event.CodeChar, uintptr(r1), 0)
			t.emit(event.CodeChar, uintptr(r2), 0)
		} else if r > 0 && r <= 0xFFFF {
			t.emit(event.CodeChar, uintptr(r), 0)
		}
	}

	if vk != 0 {
		t.hold(upCode, uintptr(vk), 0)
	}
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]
		if mod&m.mask != 0 {
			t.hold(upCode, uintptr(m.vk), event.KeyLParam(m.scan, false))
		}
	}

	if len(t.held) > 0 {
		t.gen++
		if t.schedule != nil {
			t.schedule(t.gen)
		}
	}
}

func (t *translator) hold(code event.Code, wParam, lParam uintptr) {
	t.held = append(t.held, event.Message{Window: t.handle, Code: code, WParam: wParam, LParam: lParam})
}

// mouse emits a move on position change, then button transitions, then wheel steps
func (t *translator) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	lp := event.MakeLParam(x, y)
	if !t.hasPos || x != t.x || y != t.y {
		t.x, t.y, t.hasPos = x, y, true
		t.emit(event.CodeMouseMove, 0, lp)
	}

	buttons := ev.Buttons()
	pressed := buttons & buttonMask
	for _, b := range buttonOrder {
		was := t.buttons&b.mask != 0
		is := pressed&b.mask != 0
		switch {
		case is && !was:
			t.emit(b.down, b.x, lp)
		case was && !is:
			t.emit(b.up, b.x, lp)
		}
	}
	t.buttons = pressed

	if buttons&tcell.WheelUp != 0 {
		t.emit(event.CodeMouseWheel, event.MakeWheelWParam(event.WheelDeltaUnit), lp)
	}
	if buttons&tcell.WheelDown != 0 {
		t.emit(event.CodeMouseWheel, event.MakeWheelWParam(-event.WheelDeltaUnit), lp)
	}
	if buttons&tcell.WheelRight != 0 {
		t.emit(event.CodeMouseHWheel, event.MakeWheelWParam(event.WheelDeltaUnit), lp)
	}
	if buttons&tcell.WheelLeft != 0 {
		t.emit(event.CodeMouseHWheel, event.MakeWheelWParam(-event.WheelDeltaUnit), lp)
	}
}
