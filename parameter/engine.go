package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the worker frame interval used by the demo loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PumpShutdownTimeout bounds how long the demo waits for the pump to exit after quit is posted
	PumpShutdownTimeout = 500 * time.Millisecond

	// KeyReleaseDelay is how long a terminal key stays down before its synthetic release
	// Terminals report presses only; the delay must exceed one frame so the press is observed
	KeyReleaseDelay = 3 * FrameUpdateInterval
)

// Message Queue Limits
const (
	// MessageQueueSize is the fixed capacity of the window-to-worker message ring
	MessageQueueSize = 1024
)

// Directive Codes
const (
	// DirectiveBase is the default first private message code (WM_USER)
	// Override through config when the host application already uses this range
	DirectiveBase = 0x0400

	// DirectiveCount is the number of private codes reserved above the base
	DirectiveCount = 5
)

// Input State Sizes
const (
	// MouseButtonCount covers left, right, middle, X1, X2
	MouseButtonCount = 5

	// KeysDownCount is the size of the key map indexed by platform key code
	KeysDownCount = 512

	// PlatformKeyLimit bounds key codes delivered by the platform (VK_* < 256)
	PlatformKeyLimit = 256

	// InputCharacterCapacity is the initial capacity of the pending text buffer
	InputCharacterCapacity = 16
)
