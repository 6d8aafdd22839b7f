package core

import (
	"testing"
)

func TestCrashCleanupOrder(t *testing.T) {
	var order []int
	RegisterCrashCleanup(func() { order = append(order, 1) })
	RegisterCrashCleanup(func() { panic("cleanup failed") })
	RegisterCrashCleanup(func() { order = append(order, 3) })

	runCrashCleanups()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("Expected cleanups [3 1], got %v", order)
	}

	// Cleanups run once
	runCrashCleanups()
	if len(order) != 2 {
		t.Errorf("Expected no second run, got %v", order)
	}
}

func TestGoErrPassesResult(t *testing.T) {
	errSentinel := errTest("boom")
	fn := GoErr(func() error { return errSentinel })
	if err := fn(); err != errSentinel {
		t.Errorf("Expected %v, got %v", errSentinel, err)
	}
	if err := GoErr(func() error { return nil })(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
