//go:build windows

package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXInputOutOfRangeIndex(t *testing.T) {
	// XInput supports user indices 0..3; others fail with ERROR_BAD_ARGUMENTS
	var x XInput
	assert.False(t, x.Connected(4))
	_, ok := x.State(4)
	assert.False(t, ok)
}
