package core

import (
	"testing"
	"time"
)

func TestCoarseNow_TracksRealTime(t *testing.T) {
	StartCoarseClock()
	// Let the ticker fire at least once
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(CoarseNow())
	if diff < 0 {
		diff = -diff
	}
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseNow() drifted %v from time.Now()", diff)
	}
}

func TestStartCoarseClock_Idempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()

	if CoarseNow().IsZero() {
		t.Error("CoarseNow() returned zero time after repeated StartCoarseClock calls")
	}
}
