package event

// Platform virtual key codes (VK_* numbering)
// Letters and digits use their ASCII uppercase value
const (
	VKBack     = 0x08
	VKTab      = 0x09
	VKReturn   = 0x0D
	VKShift    = 0x10
	VKControl  = 0x11
	VKMenu     = 0x12 // Alt
	VKPause    = 0x13
	VKEscape   = 0x1B
	VKSpace    = 0x20
	VKPrior    = 0x21 // Page Up
	VKNext     = 0x22 // Page Down
	VKEnd      = 0x23
	VKHome     = 0x24
	VKLeft     = 0x25
	VKUp       = 0x26
	VKRight    = 0x27
	VKDown     = 0x28
	VKInsert   = 0x2D
	VKDelete   = 0x2E
	VK0        = 0x30
	VK9        = 0x39
	VKA        = 0x41
	VKC        = 0x43
	VKV        = 0x56
	VKX        = 0x58
	VKY        = 0x59
	VKZ        = 0x5A
	VKF1       = 0x70
	VKF12      = 0x7B
	VKLShift   = 0xA0
	VKRShift   = 0xA1
	VKLControl = 0xA2
	VKRControl = 0xA3
	VKLMenu    = 0xA4
	VKRMenu    = 0xA5
)
