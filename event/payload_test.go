package event

import "testing"

func TestLParamRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"origin", 0, 0},
		{"positive", 15, 25},
		{"negative", -3, -32768},
		{"max", 32767, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := MakeLParam(tt.x, tt.y)
			if x, y := XLParam(l), YLParam(l); x != tt.x || y != tt.y {
				t.Errorf("got (%d,%d), want (%d,%d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestWheelDelta(t *testing.T) {
	for _, d := range []int{WheelDeltaUnit, -WheelDeltaUnit, 2 * WheelDeltaUnit, 0} {
		if got := WheelDelta(MakeWheelWParam(d)); got != d {
			t.Errorf("WheelDelta(%d) = %d", d, got)
		}
	}
}

func TestKeyLParam(t *testing.T) {
	l := KeyLParam(ScanRShift, true)
	if ScanCode(l) != ScanRShift {
		t.Errorf("ScanCode = 0x%X", ScanCode(l))
	}
	if !IsExtended(l) {
		t.Error("expected extended flag")
	}
	if ShiftFromScanCode(l) != VKRShift {
		t.Error("expected right shift")
	}
	if ShiftFromScanCode(KeyLParam(ScanLShift, false)) != VKLShift {
		t.Error("expected left shift")
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeLButtonDown, "LButtonDown"},
		{CodeUser + 3, "User+3"},
		{Code(0x0F), "0x000F"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(0x%X).String() = %q, want %q", uint32(tt.code), got, tt.want)
		}
	}
}
