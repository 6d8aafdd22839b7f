package input

import (
	"unicode"
	"unicode/utf16"

	"github.com/lixenwraith/inputrelay/parameter"
)

// Vec2 is a 2D float pair (pixels or cells, as delivered by the platform)
type Vec2 struct {
	X, Y float32
}

// IO is the shared UI-input state consumed by the frame loop
// Single writer: the relay backend on the frame goroutine
// The window pump goroutine never touches it
type IO struct {
	// Configuration set by the application
	ConfigFlags ConfigFlags

	// Capabilities advertised by the platform backend
	BackendFlags        BackendFlags
	BackendPlatformName string

	// Frame
	DisplaySize Vec2
	DeltaTime   float32

	// Mouse
	MousePos        Vec2
	MouseDown       [parameter.MouseButtonCount]bool
	MouseWheel      float32 // Vertical, accumulating; one notch = 1.0
	MouseWheelH     float32 // Horizontal, accumulating
	MouseDrawCursor bool    // Application draws its own cursor, OS cursor hidden
	MouseCursor     Cursor  // Requested cursor shape
	WantSetMousePos bool    // Application requests the OS pointer moved to MousePos

	// Keyboard
	KeysDown [parameter.KeysDownCount]bool
	KeyMap   [KeyCount]int
	KeyShift bool
	KeyCtrl  bool
	KeyAlt   bool
	KeySuper bool

	// Gamepad navigation, 0..1 per input
	NavInputs [NavInputCount]float32

	// Text input method
	ImeWindowHandle        uintptr
	ImeSetInputScreenPosFn func(x, y int)

	inputChars    []rune
	pendingHighSu uint16
}

// NewIO creates an input state with the cursor at the origin and an arrow cursor requested
func NewIO() *IO {
	io := &IO{
		MouseCursor: CursorArrow,
		inputChars:  make([]rune, 0, parameter.InputCharacterCapacity),
	}
	for i := range io.KeyMap {
		io.KeyMap[i] = -1
	}
	return io
}

// AddInputCharacter queues one decoded character for text input
func (io *IO) AddInputCharacter(r rune) {
	if r == 0 {
		return
	}
	io.inputChars = append(io.inputChars, r)
}

// AddInputCharacterUTF16 queues one UTF-16 code unit, pairing surrogates across calls
// An unpaired surrogate is replaced with U+FFFD
func (io *IO) AddInputCharacterUTF16(c uint16) {
	if c == 0 {
		return
	}

	r := rune(c)
	switch {
	case utf16.IsSurrogate(r) && c < 0xDC00:
		// High surrogate: hold until low half arrives
		if io.pendingHighSu != 0 {
			io.inputChars = append(io.inputChars, unicode.ReplacementChar)
		}
		io.pendingHighSu = c
		return
	case utf16.IsSurrogate(r):
		if io.pendingHighSu != 0 {
			r = utf16.DecodeRune(rune(io.pendingHighSu), r)
			io.pendingHighSu = 0
		} else {
			r = unicode.ReplacementChar
		}
	default:
		if io.pendingHighSu != 0 {
			io.inputChars = append(io.inputChars, unicode.ReplacementChar)
			io.pendingHighSu = 0
		}
	}
	io.AddInputCharacter(r)
}

// InputCharacters returns characters queued since the last clear
func (io *IO) InputCharacters() []rune {
	return io.inputChars
}

// ClearInputCharacters empties the pending text buffer, keeping its storage
func (io *IO) ClearInputCharacters() {
	io.inputChars = io.inputChars[:0]
	io.pendingHighSu = 0
}

// IsAnyMouseDown reports whether any tracked button is held
func (io *IO) IsAnyMouseDown() bool {
	for _, down := range io.MouseDown {
		if down {
			return true
		}
	}
	return false
}

// ResetTransient releases every button and key, zeroes wheel totals and parks the pointer at the origin
func (io *IO) ResetTransient() {
	io.MouseDown = [parameter.MouseButtonCount]bool{}
	io.MouseWheel = 0
	io.MouseWheelH = 0
	io.MousePos = Vec2{}

	io.KeysDown = [parameter.KeysDownCount]bool{}
	io.KeyShift = false
	io.KeyCtrl = false
	io.KeyAlt = false
}
