package tui

import "time"

// transition tracks one retargetable, time-bounded animation value.
// A state change arriving mid-flight retargets the animation from its
// current value toward the new state instead of queuing.
type transition struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func newTransition(value float64) transition {
	return transition{from: value, to: value}
}

// Retarget redirects the transition toward target over d, starting from
// the in-flight value. Retargeting to the current target is a no-op so
// echoed state changes do not restart a settled animation.
func (t *transition) Retarget(target float64, d time.Duration, now time.Time) {
	if t.to == target {
		return
	}
	t.from = t.Value(now)
	t.to = target
	t.start = now
	t.duration = d
}

// Restart replays the transition from from to to over d, regardless of
// its current state.
func (t *transition) Restart(from, to float64, d time.Duration, now time.Time) {
	t.from = from
	t.to = to
	t.start = now
	t.duration = d
}

// Value returns the eased value at now.
func (t transition) Value(now time.Time) float64 {
	if t.Done(now) {
		return t.to
	}
	if now.Before(t.start) {
		return t.from
	}
	progress := float64(now.Sub(t.start)) / float64(t.duration)
	return t.from + (t.to-t.from)*easeOut(progress)
}

// Done reports whether the transition has settled.
func (t transition) Done(now time.Time) bool {
	return t.duration <= 0 || !now.Before(t.start.Add(t.duration))
}

// easeOut is the shared ease-out curve for all control transitions.
func easeOut(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	inv := 1 - progress
	return 1 - inv*inv
}
