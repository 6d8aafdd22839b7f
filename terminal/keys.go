// @focus: #sys { io } #input { keys }
package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputrelay/event"
)

// namedKeys maps tcell special keys to platform key codes
// Ctrl+letter aliases (Tab = Ctrl+I, Enter = Ctrl+M, Backspace = Ctrl+H) resolve here first
var namedKeys = map[tcell.Key]uint16{
	tcell.KeyEscape:     event.VKEscape,
	tcell.KeyEnter:      event.VKReturn,
	tcell.KeyTab:        event.VKTab,
	tcell.KeyBacktab:    event.VKTab,
	tcell.KeyBackspace:  event.VKBack,
	tcell.KeyBackspace2: event.VKBack,
	tcell.KeyDelete:     event.VKDelete,
	tcell.KeyInsert:     event.VKInsert,
	tcell.KeyUp:         event.VKUp,
	tcell.KeyDown:       event.VKDown,
	tcell.KeyLeft:       event.VKLeft,
	tcell.KeyRight:      event.VKRight,
	tcell.KeyHome:       event.VKHome,
	tcell.KeyEnd:        event.VKEnd,
	tcell.KeyPgUp:       event.VKPrior,
	tcell.KeyPgDn:       event.VKNext,
	tcell.KeyPause:      event.VKPause,
}

// keyCode resolves a tcell key event to a platform key code and effective modifiers
// Returns 0 for runes with no key of their own (punctuation, non-ASCII); those produce text only
func keyCode(k tcell.Key, r rune, mod tcell.ModMask) (uint16, tcell.ModMask) {
	if vk, ok := namedKeys[k]; ok {
		if k == tcell.KeyBacktab {
			mod |= tcell.ModShift
		}
		return vk, mod
	}

	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return event.VKF1 + uint16(k-tcell.KeyF1), mod
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return event.VKA + uint16(k-tcell.KeyCtrlA), mod | tcell.ModCtrl
	case k == tcell.KeyCtrlSpace:
		return event.VKSpace, mod | tcell.ModCtrl
	case k != tcell.KeyRune:
		return 0, mod
	}

	// Terminals deliver shifted characters without the Shift modifier
	if shiftedRune(r) {
		mod |= tcell.ModShift
	}
	return runeCode(r), mod
}

// usShifted holds the symbols typed with Shift on a US layout
const usShifted = `~!@#$%^&*()_+{}|:"<>?`

// shiftedRune reports whether r is typed with Shift held: uppercase ASCII letters and US-layout shifted symbols
func shiftedRune(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return r < utf8.RuneSelf && strings.ContainsRune(usShifted, r)
}

// runeCode maps printable ASCII with a dedicated key to its platform code
// Letters use the uppercase code, matching the platform convention
func runeCode(r rune) uint16 {
	switch {
	case r >= 'a' && r <= 'z':
		return event.VKA + uint16(r-'a')
	case r >= 'A' && r <= 'Z':
		return event.VKA + uint16(r-'A')
	case r >= '0' && r <= '9':
		return event.VK0 + uint16(r-'0')
	case r == ' ':
		return event.VKSpace
	}
	return 0
}
