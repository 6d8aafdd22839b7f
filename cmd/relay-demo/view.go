package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
	"github.com/lixenwraith/inputrelay/relay"
)

const (
	objLabel = "[X]"
	maxText  = 40
	maxLog   = 8
)

var (
	styleBase   = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 30)).Foreground(tcell.NewRGBColor(180, 180, 180))
	styleTitle  = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 60)).Foreground(tcell.NewRGBColor(200, 200, 200)).Bold(true)
	styleObj    = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 60)).Foreground(tcell.NewRGBColor(100, 255, 100)).Bold(true)
	styleDrag   = styleObj.Foreground(tcell.NewRGBColor(255, 255, 100))
	styleOn     = styleBase.Foreground(tcell.NewRGBColor(100, 255, 100)).Bold(true)
	styleStatus = styleBase.Foreground(tcell.NewRGBColor(140, 140, 160))
)

// view is the demo's frame-goroutine state; everything it knows comes from IO
type view struct {
	objX, objY int
	placed     bool
	dragging   bool
	grabDX     int
	wasDown    bool
	backWas    bool

	text   []rune
	wheel  float32
	wheelH float32

	eventLog []string
}

func newView() *view {
	return &view{}
}

func (v *view) addLog(s string) {
	if len(v.eventLog) >= maxLog {
		copy(v.eventLog, v.eventLog[1:])
		v.eventLog = v.eventLog[:maxLog-1]
	}
	v.eventLog = append(v.eventLog, s)
}

// hovering reports whether the pointer is over the object
func (v *view) hovering(io *input.IO) bool {
	x, y := int(io.MousePos.X), int(io.MousePos.Y)
	return y == v.objY && x >= v.objX && x < v.objX+runewidth.StringWidth(objLabel)
}

// update consumes this frame's input: drag, text, wheel, and requests a cursor shape
func (v *view) update(io *input.IO) {
	w, h := int(io.DisplaySize.X), int(io.DisplaySize.Y)
	if !v.placed && w > 0 && h > 0 {
		v.objX, v.objY, v.placed = w/2, h/2, true
	}

	down := io.MouseDown[0]
	switch {
	case down && !v.wasDown && v.hovering(io):
		v.dragging = true
		v.grabDX = int(io.MousePos.X) - v.objX
		v.addLog(fmt.Sprintf("grab at (%d,%d)", v.objX, v.objY))
	case down && v.dragging:
		v.objX = clamp(int(io.MousePos.X)-v.grabDX, 0, w-runewidth.StringWidth(objLabel))
		v.objY = clamp(int(io.MousePos.Y), 0, h-1)
	case !down && v.dragging:
		v.dragging = false
		v.addLog(fmt.Sprintf("drop at (%d,%d)", v.objX, v.objY))
	}
	v.wasDown = down

	if chars := io.InputCharacters(); len(chars) > 0 {
		v.text = append(v.text, chars...)
		if over := len(v.text) - maxText; over > 0 {
			v.text = append(v.text[:0], v.text[over:]...)
		}
		v.addLog(fmt.Sprintf("text %q", string(chars)))
		io.ClearInputCharacters()

		// Caret follows typed text
		if io.ImeSetInputScreenPosFn != nil {
			io.ImeSetInputScreenPosFn(textCol+runewidth.StringWidth(string(v.text)), textRow)
		}
	}
	// Edge only: a press stays down for several frames
	back := io.KeysDown[event.VKBack]
	if back && !v.backWas && len(v.text) > 0 {
		v.text = v.text[:len(v.text)-1]
	}
	v.backWas = back

	if io.MouseWheel != 0 || io.MouseWheelH != 0 {
		v.wheel += io.MouseWheel
		v.wheelH += io.MouseWheelH
		v.addLog(fmt.Sprintf("wheel %+.0f/%+.0f", io.MouseWheel, io.MouseWheelH))
		io.MouseWheel, io.MouseWheelH = 0, 0
	}

	switch {
	case v.dragging:
		io.MouseCursor = input.CursorResizeAll
	case v.hovering(io):
		io.MouseCursor = input.CursorHand
	default:
		io.MouseCursor = input.CursorTextInput
	}
}

// wantQuit reports Escape or Ctrl+C held this frame
func wantQuit(io *input.IO) bool {
	return io.KeysDown[event.VKEscape] || (io.KeyCtrl && io.KeysDown[event.VKC])
}

const (
	textCol = 7
	textRow = 7
)

// draw renders the full frame; the caller shows it
func (v *view) draw(s tcell.Screen, io *input.IO, focused bool, stats relay.Stats) {
	w, h := s.Size()
	s.SetStyle(styleBase)
	s.Clear()

	title := "Relay Demo - Move, click, drag the [X], type - Esc or Ctrl+C to quit"
	fillRow(s, 0, w, styleTitle)
	drawText(s, max(0, (w-runewidth.StringWidth(title))/2), 0, title, styleTitle)

	drawText(s, 1, 2, fmt.Sprintf("Pointer: (%.0f,%.0f)", io.MousePos.X, io.MousePos.Y), styleBase)
	x := drawText(s, 1, 3, "Buttons:", styleBase)
	for i, name := range []string{"L", "R", "M", "X1", "X2"} {
		st := styleBase
		if io.MouseDown[i] {
			st = styleOn
		}
		x = drawText(s, x+1, 3, name, st)
	}
	x = drawText(s, 1, 4, "Modifiers:", styleBase)
	for _, m := range []struct {
		name string
		on   bool
	}{{"Shift", io.KeyShift}, {"Ctrl", io.KeyCtrl}, {"Alt", io.KeyAlt}, {"Super", io.KeySuper}} {
		st := styleBase
		if m.on {
			st = styleOn
		}
		x = drawText(s, x+1, 4, m.name, st)
	}
	drawText(s, 1, 5, "Keys: "+heldKeys(io), styleBase)
	drawText(s, 1, 6, fmt.Sprintf("Wheel: %+.0f / %+.0f", v.wheel, v.wheelH), styleBase)
	drawText(s, 1, textRow, "Text:", styleBase)
	drawText(s, textCol, textRow, string(v.text), styleOn)

	for i, entry := range v.eventLog {
		y := 9 + i
		if y >= h-2 {
			break
		}
		drawText(s, 1, y, entry, styleStatus)
	}

	if v.placed && v.objY < h {
		st := styleObj
		if v.dragging {
			st = styleDrag
		}
		drawText(s, v.objX, v.objY, objLabel, st)
	}

	status := fmt.Sprintf("Size: %.0fx%.0f | Focus: %v | dt: %.1fms | Drained: %d | Dropped: %d | Directives: %d",
		io.DisplaySize.X, io.DisplaySize.Y, focused, io.DeltaTime*1000, stats.Drained, stats.Dropped, stats.Directives)
	drawText(s, 1, h-1, status, styleStatus)
}

// heldKeys lists held virtual key codes
func heldKeys(io *input.IO) string {
	var b strings.Builder
	for vk, down := range io.KeysDown {
		if !down {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02X", vk)
	}
	return b.String()
}

// drawText writes s at (x,y) honoring wide runes and returns the column after it
func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		s.SetContent(x, y, r, nil, st)
		x += rw
	}
	return x
}

func fillRow(s tcell.Screen, y, w int, st tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, st)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
