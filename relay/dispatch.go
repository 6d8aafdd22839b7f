package relay

import (
	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/input"
	"github.com/lixenwraith/inputrelay/parameter"
)

// drain applies every pending message to IO
// While unfocused only lifecycle messages are applied
func (b *Backend) drain() {
	n := event.Drain(b.queue, b.dispatch)
	if n > 0 {
		b.drained.Add(uint64(n))
	}
}

func (b *Backend) dispatch(m event.Message) {
	if b.focused && b.foreground(m) {
		return
	}
	b.background(m)
}

// mouseButton maps a button message to its IO.MouseDown index
func mouseButton(m event.Message) int {
	switch m.Code {
	case event.CodeLButtonDown, event.CodeLButtonDbl, event.CodeLButtonUp:
		return 0
	case event.CodeRButtonDown, event.CodeRButtonDbl, event.CodeRButtonUp:
		return 1
	case event.CodeMButtonDown, event.CodeMButtonDbl, event.CodeMButtonUp:
		return 2
	}
	if event.XButton(m.WParam) == event.XButton1 {
		return 3
	}
	return 4
}

// foreground applies pointer and keyboard input; false if m is not an input message
func (b *Backend) foreground(m event.Message) bool {
	io := b.io
	switch m.Code {
	case event.CodeLButtonDown, event.CodeLButtonDbl,
		event.CodeRButtonDown, event.CodeRButtonDbl,
		event.CodeMButtonDown, event.CodeMButtonDbl,
		event.CodeXButtonDown, event.CodeXButtonDbl:
		if !io.IsAnyMouseDown() {
			b.postCapture(CaptureSet)
		}
		io.MouseDown[mouseButton(m)] = true
		setMousePos(io, m)
		return true

	case event.CodeLButtonUp, event.CodeRButtonUp, event.CodeMButtonUp, event.CodeXButtonUp:
		io.MouseDown[mouseButton(m)] = false
		if !io.IsAnyMouseDown() {
			b.postCapture(CaptureRelease)
		}
		setMousePos(io, m)
		return true

	case event.CodeMouseMove, event.CodeMouseHover:
		setMousePos(io, m)
		return true

	case event.CodeMouseWheel:
		io.MouseWheel += float32(event.WheelDelta(m.WParam)) / event.WheelDeltaUnit
		return true

	case event.CodeMouseHWheel:
		io.MouseWheelH += float32(event.WheelDelta(m.WParam)) / event.WheelDeltaUnit
		return true

	case event.CodeKeyDown, event.CodeSysKeyDown:
		updateKey(io, m, true)
		return true

	case event.CodeKeyUp, event.CodeSysKeyUp:
		updateKey(io, m, false)
		return true

	case event.CodeChar:
		if m.WParam > 0 && m.WParam < 0x10000 {
			io.AddInputCharacterUTF16(uint16(m.WParam))
		}
		return true
	}
	return false
}

// background applies window lifecycle messages; false if m is not one
func (b *Backend) background(m event.Message) bool {
	switch m.Code {
	case event.CodeActivateApp:
		if !b.cfg.InputWhileUnfocused {
			b.focused = m.WParam != 0
		}
		if b.cfg.ResetOnFocusLoss {
			b.resetInput()
		}
		return true

	case event.CodeSize:
		b.io.DisplaySize = input.Vec2{
			X: float32(event.LoWord(m.LParam)),
			Y: float32(event.HiWord(m.LParam)),
		}
		return true

	case event.CodeDeviceChange:
		if uint32(m.WParam) == event.DevNodesChanged {
			b.wantUpdateGamepad = true
		}
		return true
	}
	return false
}

// resetInput drops all transient input and cancels any pointer capture
func (b *Backend) resetInput() {
	b.io.ResetTransient()
	b.postCapture(CaptureRelease)
}

func setMousePos(io *input.IO, m event.Message) {
	io.MousePos = input.Vec2{
		X: float32(event.XLParam(m.LParam)),
		Y: float32(event.YLParam(m.LParam)),
	}
}

// updateKey tracks a key transition
// Generic modifier codes resolve to their left/right variant; releasing a modifier
// clears both variants so a key held on each side cannot stick
func updateKey(io *input.IO, m event.Message, down bool) {
	vk := uint16(m.WParam)
	switch vk {
	case event.VKShift:
		vk = event.ShiftFromScanCode(m.LParam)
		if !down {
			io.KeysDown[event.VKLShift] = false
			io.KeysDown[event.VKRShift] = false
		}
		io.KeyShift = down
	case event.VKControl:
		vk = event.VKLControl
		if event.IsExtended(m.LParam) {
			vk = event.VKRControl
		}
		if !down {
			io.KeysDown[event.VKLControl] = false
			io.KeysDown[event.VKRControl] = false
		}
		io.KeyCtrl = down
	case event.VKMenu:
		vk = event.VKLMenu
		if event.IsExtended(m.LParam) {
			vk = event.VKRMenu
		}
		if !down {
			io.KeysDown[event.VKLMenu] = false
			io.KeysDown[event.VKRMenu] = false
		}
		io.KeyAlt = down
	}
	if vk < parameter.PlatformKeyLimit {
		io.KeysDown[vk] = down
	}
}
