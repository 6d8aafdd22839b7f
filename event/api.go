package event

// MessageQueue is the ring used between the window pump and the frame loop
type MessageQueue = Queue[Message]

// NewMessageQueue creates a message ring with the given capacity
func NewMessageQueue(capacity int) *MessageQueue {
	return NewQueue[Message](capacity)
}

// Drain reads every pending item and hands it to fn in FIFO order
// Consumer only. Returns the number of items delivered
func Drain[T any](q *Queue[T], fn func(T)) int {
	var (
		v T
		n int
	)
	for q.Read(&v) {
		fn(v)
		n++
	}
	return n
}
