package animations

import "math/rand"

// Animation cycles a frame index through a fixed-length sequence on a wall
// clock cadence. It only tracks the index; the images themselves live with
// the entity's sprite data.
type Animation struct {
	frameCount int
	frame      int
	cadenceMs  int64
	nextDueMs  int64
}

// New creates an animation over frameCount frames changing every cadenceMs
// milliseconds, starting at nowMs. The first change is delayed by a random
// jitter of up to jitterMs so identical entities spawned together don't
// animate in lockstep.
func New(frameCount int, cadenceMs, jitterMs, nowMs int64) *Animation {
	a := &Animation{
		frameCount: frameCount,
		cadenceMs:  cadenceMs,
		nextDueMs:  nowMs,
	}
	if jitterMs > 0 {
		a.nextDueMs += rand.Int63n(jitterMs + 1)
	}
	return a
}

// Update advances the frame index once per cadence interval that has fully
// elapsed by nowMs, wrapping to the first frame after the last. The due time
// moves in cadence steps from its previous value rather than from nowMs, so
// late calls don't accumulate drift. Single-frame animations never change.
func (a *Animation) Update(nowMs int64) {
	if a.frameCount <= 1 {
		return
	}
	for nowMs > a.nextDueMs {
		a.frame = (a.frame + 1) % a.frameCount
		a.nextDueMs += a.cadenceMs
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// FrameCount returns the length of the frame sequence.
func (a *Animation) FrameCount() int {
	return a.frameCount
}
