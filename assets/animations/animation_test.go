package animations

import "testing"

func TestAnimation_SingleFrameNeverAdvances(t *testing.T) {
	a := New(1, 150, 0, 0)

	a.Update(100_000)
	if a.Frame() != 0 {
		t.Errorf("single-frame animation advanced to frame %d, want 0", a.Frame())
	}
}

func TestAnimation_AdvancesOncePerCadence(t *testing.T) {
	a := New(4, 100, 0, 0)

	steps := []struct {
		nowMs     int64
		wantFrame int
	}{
		{50, 1}, // first interval due at creation time
		{99, 1}, // next interval not elapsed yet
		{101, 2},
		{201, 3},
		{301, 0}, // wraps modulo frame count
		{401, 1},
	}
	for _, s := range steps {
		a.Update(s.nowMs)
		if a.Frame() != s.wantFrame {
			t.Errorf("Update(%d): frame = %d, want %d", s.nowMs, a.Frame(), s.wantFrame)
		}
	}
}

func TestAnimation_LateUpdateCatchesUp(t *testing.T) {
	a := New(3, 100, 0, 0)

	// A single late call steps once per fully elapsed interval, not once
	// per call: intervals due at 0, 100 and 200 have all passed.
	a.Update(250)
	if a.Frame() != 0 { // 3 steps over 3 frames wraps back to 0
		t.Errorf("frame after late update = %d, want 0", a.Frame())
	}
}

func TestAnimation_DueTimeDoesNotDrift(t *testing.T) {
	a := New(2, 100, 0, 0)

	// Every update arrives 30ms late; the due time must still march in
	// exact cadence steps instead of sliding by the lateness.
	a.Update(30)
	if a.nextDueMs != 100 {
		t.Fatalf("nextDueMs after first late update = %d, want 100", a.nextDueMs)
	}
	a.Update(130)
	if a.nextDueMs != 200 {
		t.Errorf("nextDueMs after second late update = %d, want 200", a.nextDueMs)
	}
}

func TestAnimation_JitterStaysWithinBound(t *testing.T) {
	const (
		nowMs    = 1_000
		jitterMs = 500
	)
	for i := 0; i < 100; i++ {
		a := New(4, 150, jitterMs, nowMs)
		if a.nextDueMs < nowMs || a.nextDueMs > nowMs+jitterMs {
			t.Fatalf("initial due time %d outside [%d, %d]", a.nextDueMs, nowMs, nowMs+jitterMs)
		}
	}
}

func TestAnimation_FrameAlwaysInBounds(t *testing.T) {
	a := New(3, 100, 0, 0)
	for now := int64(0); now < 5_000; now += 73 {
		a.Update(now)
		if a.Frame() < 0 || a.Frame() >= a.FrameCount() {
			t.Fatalf("frame %d out of bounds at t=%d", a.Frame(), now)
		}
	}
}
