package event

// Operand packing helpers
// Positions travel as two signed 16-bit values in one word, matching the platform layout
// so a directive payload is carried by value and never by address

// MakeLParam packs x into the low word and y into the high word
func MakeLParam(x, y int) uintptr {
	return uintptr(uint32(uint16(int16(x))) | uint32(uint16(int16(y)))<<16)
}

// LoWord returns bits 0-15
func LoWord(v uintptr) uint16 {
	return uint16(v & 0xFFFF)
}

// HiWord returns bits 16-31
func HiWord(v uintptr) uint16 {
	return uint16((v >> 16) & 0xFFFF)
}

// XLParam returns the sign-extended x coordinate
func XLParam(l uintptr) int {
	return int(int16(LoWord(l)))
}

// YLParam returns the sign-extended y coordinate
func YLParam(l uintptr) int {
	return int(int16(HiWord(l)))
}

// MakeWheelWParam places a signed wheel delta in the high word
func MakeWheelWParam(delta int) uintptr {
	return uintptr(uint32(uint16(int16(delta))) << 16)
}

// WheelDelta returns the signed wheel delta from a wheel WParam
func WheelDelta(w uintptr) int {
	return int(int16(HiWord(w)))
}

// XButton returns XButton1 or XButton2 from an XButton WParam
func XButton(w uintptr) uint16 {
	return HiWord(w)
}

// Key LParam layout: bits 16-23 scan code, bit 24 extended key flag
const (
	keyScanMask     = 0x00FF0000
	keyExtendedFlag = 0x01000000
)

// KeyLParam builds the LParam of a key message
func KeyLParam(scan uint8, extended bool) uintptr {
	l := uintptr(scan) << 16
	if extended {
		l |= keyExtendedFlag
	}
	return l
}

// ScanCode extracts the hardware scan code of a key message
func ScanCode(l uintptr) uint8 {
	return uint8((l & keyScanMask) >> 16)
}

// IsExtended reports the extended-key flag (right-hand Ctrl/Alt)
func IsExtended(l uintptr) bool {
	return l&keyExtendedFlag != 0
}

// Scan codes of the two shift keys
const (
	ScanLShift = 0x2A
	ScanRShift = 0x36
)

// ShiftFromScanCode resolves a generic shift message to its left/right variant
func ShiftFromScanCode(l uintptr) uint16 {
	if ScanCode(l) == ScanRShift {
		return VKRShift
	}
	return VKLShift
}
