package input

// Key identifies a navigation/editing key the UI looks up through IO.KeyMap
type Key uint8

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyKeyPadEnter
	KeyA // for text edit CTRL+A: select all
	KeyC // for text edit CTRL+C: copy
	KeyV // for text edit CTRL+V: paste
	KeyX // for text edit CTRL+X: cut
	KeyY // for text edit CTRL+Y: redo
	KeyZ // for text edit CTRL+Z: undo

	KeyCount
)

// IsKeyDown resolves k through the key map into the platform key array
func (io *IO) IsKeyDown(k Key) bool {
	if k >= KeyCount {
		return false
	}
	idx := io.KeyMap[k]
	if idx < 0 || idx >= len(io.KeysDown) {
		return false
	}
	return io.KeysDown[idx]
}

// NavInput indexes IO.NavInputs
type NavInput uint8

const (
	NavActivate NavInput = iota
	NavCancel
	NavInputMenu
	NavInputText
	NavDpadLeft
	NavDpadRight
	NavDpadUp
	NavDpadDown
	NavLStickLeft
	NavLStickRight
	NavLStickUp
	NavLStickDown
	NavFocusPrev
	NavFocusNext
	NavTweakSlow
	NavTweakFast

	NavInputCount
)

// Cursor is the pointer shape the UI requests
type Cursor int8

const (
	CursorNone Cursor = iota - 1
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed

	CursorCount
)

// String returns human-readable cursor name
func (c Cursor) String() string {
	switch c {
	case CursorNone:
		return "None"
	case CursorArrow:
		return "Arrow"
	case CursorTextInput:
		return "TextInput"
	case CursorResizeAll:
		return "ResizeAll"
	case CursorResizeNS:
		return "ResizeNS"
	case CursorResizeEW:
		return "ResizeEW"
	case CursorResizeNESW:
		return "ResizeNESW"
	case CursorResizeNWSE:
		return "ResizeNWSE"
	case CursorHand:
		return "Hand"
	case CursorNotAllowed:
		return "NotAllowed"
	default:
		return "Unknown"
	}
}

// ConfigFlags are set by the application (bitmask)
type ConfigFlags uint32

const (
	ConfigNavEnableKeyboard    ConfigFlags = 1 << 0
	ConfigNavEnableGamepad     ConfigFlags = 1 << 1
	ConfigNavEnableSetMousePos ConfigFlags = 1 << 2
	ConfigNoMouseCursorChange  ConfigFlags = 1 << 5
)

// BackendFlags are set by the platform backend to advertise optional features (bitmask)
type BackendFlags uint32

const (
	BackendHasGamepad      BackendFlags = 1 << 0
	BackendHasMouseCursors BackendFlags = 1 << 1
	BackendHasSetMousePos  BackendFlags = 1 << 2
)
