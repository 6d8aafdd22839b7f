package event

// SlotState is the per-slot handoff tag between the single producer and the single consumer
//
// Transitions:
//   - Producer: ReadEnd -> Unknown -> WriteStart -> (copy in) -> Unknown -> WriteEnd
//   - Consumer: WriteEnd -> Unknown -> ReadStart -> (copy out) -> Unknown -> ReadEnd
//
// Only WriteEnd and ReadEnd are rest states observed by the opposite side
// The terminal *End value is stored after the payload copy, never before
type SlotState uint32

const (
	StateUnknown    SlotState = 0b0000_0000
	StateWriteStart SlotState = 0b0000_0001
	StateWriteEnd   SlotState = 0b0000_0010
	StateReadStart  SlotState = 0b0000_0100
	StateReadEnd    SlotState = 0b0000_1000
)

// String returns human-readable state name
func (s SlotState) String() string {
	switch s {
	case StateUnknown:
		return "Unknown"
	case StateWriteStart:
		return "WriteStart"
	case StateWriteEnd:
		return "WriteEnd"
	case StateReadStart:
		return "ReadStart"
	case StateReadEnd:
		return "ReadEnd"
	default:
		return "Invalid"
	}
}

// Writable reports whether the producer may claim a slot in this state
func (s SlotState) Writable() bool {
	return s&StateReadEnd != 0
}

// Readable reports whether the consumer may claim a slot in this state
func (s SlotState) Readable() bool {
	return s&StateWriteEnd != 0
}
