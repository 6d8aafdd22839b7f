package event

import "fmt"

// Code is a window message category code
// Numbering follows the Win32 WM_* space so platform pumps can forward raw messages
type Code uint32

const (
	CodeNull         Code = 0x0000
	CodeDestroy      Code = 0x0002
	CodeSize         Code = 0x0005
	CodeActivateApp  Code = 0x001C
	CodeSetCursor    Code = 0x0020
	CodeKeyDown      Code = 0x0100
	CodeKeyUp        Code = 0x0101
	CodeChar         Code = 0x0102
	CodeSysKeyDown   Code = 0x0104
	CodeSysKeyUp     Code = 0x0105
	CodeSysCommand   Code = 0x0112
	CodeMouseMove    Code = 0x0200
	CodeLButtonDown  Code = 0x0201
	CodeLButtonUp    Code = 0x0202
	CodeLButtonDbl   Code = 0x0203
	CodeRButtonDown  Code = 0x0204
	CodeRButtonUp    Code = 0x0205
	CodeRButtonDbl   Code = 0x0206
	CodeMButtonDown  Code = 0x0207
	CodeMButtonUp    Code = 0x0208
	CodeMButtonDbl   Code = 0x0209
	CodeMouseWheel   Code = 0x020A
	CodeXButtonDown  Code = 0x020B
	CodeXButtonUp    Code = 0x020C
	CodeXButtonDbl   Code = 0x020D
	CodeMouseHWheel  Code = 0x020E
	CodeDeviceChange Code = 0x0219
	CodeMouseHover   Code = 0x02A1

	// CodeUser is the first code free for private use (WM_USER)
	CodeUser Code = 0x0400
)

// Operand constants carried in WParam/LParam
const (
	// WheelDeltaUnit is one wheel notch
	WheelDeltaUnit = 120

	// DevNodesChanged is the device-change WParam that invalidates device enumeration
	DevNodesChanged = 0x0007

	// SCKeyMenu is the SysCommand WParam (masked with 0xFFF0) for alt-key menu activation
	SCKeyMenu = 0xF100

	// HTClient is the SetCursor hit-test value for the client area
	HTClient = 1

	// XButton1 and XButton2 identify the extra buttons in the XButton high word
	XButton1 = 0x0001
	XButton2 = 0x0002
)

// Message is one window notification: source, category, two operand words
type Message struct {
	Window uintptr
	Code   Code
	WParam uintptr
	LParam uintptr
}

var codeNames = map[Code]string{
	CodeNull:         "Null",
	CodeDestroy:      "Destroy",
	CodeSize:         "Size",
	CodeActivateApp:  "ActivateApp",
	CodeSetCursor:    "SetCursor",
	CodeKeyDown:      "KeyDown",
	CodeKeyUp:        "KeyUp",
	CodeChar:         "Char",
	CodeSysKeyDown:   "SysKeyDown",
	CodeSysKeyUp:     "SysKeyUp",
	CodeSysCommand:   "SysCommand",
	CodeMouseMove:    "MouseMove",
	CodeLButtonDown:  "LButtonDown",
	CodeLButtonUp:    "LButtonUp",
	CodeLButtonDbl:   "LButtonDblClk",
	CodeRButtonDown:  "RButtonDown",
	CodeRButtonUp:    "RButtonUp",
	CodeRButtonDbl:   "RButtonDblClk",
	CodeMButtonDown:  "MButtonDown",
	CodeMButtonUp:    "MButtonUp",
	CodeMButtonDbl:   "MButtonDblClk",
	CodeMouseWheel:   "MouseWheel",
	CodeXButtonDown:  "XButtonDown",
	CodeXButtonUp:    "XButtonUp",
	CodeXButtonDbl:   "XButtonDblClk",
	CodeMouseHWheel:  "MouseHWheel",
	CodeDeviceChange: "DeviceChange",
	CodeMouseHover:   "MouseHover",
}

// String returns the message name, or User+n / 0x.... for unnamed codes
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c >= CodeUser {
		return fmt.Sprintf("User+%d", uint32(c-CodeUser))
	}
	return fmt.Sprintf("0x%04X", uint32(c))
}

// String formats the message for logs
func (m Message) String() string {
	return fmt.Sprintf("%s(w=0x%X, l=0x%X)", m.Code, m.WParam, m.LParam)
}
