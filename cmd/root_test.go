package cmd

import (
	"testing"
)

func TestDrainInterruptsStops(t *testing.T) {
	stop := drainInterrupts()

	// stop blocks until the drain goroutine exits; a leaked goroutine
	// would hang the test here.
	stop()
}
