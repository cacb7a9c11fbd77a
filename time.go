package gdan

// Time tracks frame timing. The App advances it once per Update by the fixed
// tick length 1/TPS.
type Time struct {
	delta   float64
	elapsed float64
	frame   uint64
}

// Delta returns the length of the current frame in seconds.
func (t *Time) Delta() float64 { return t.delta }

// Elapsed returns the seconds since the app started.
func (t *Time) Elapsed() float64 { return t.elapsed }

// Frame returns the number of updates run so far, counting the current one.
func (t *Time) Frame() uint64 { return t.frame }

// Advance moves time forward by dt seconds.
func (t *Time) Advance(dt float64) {
	t.delta = dt
	t.elapsed += dt
	t.frame++
}

// TimerMode selects whether a Timer stops or restarts when it finishes.
type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts down a duration driven by Tick.
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed       float64
	finished      bool
	timesFinished int
}

// NewTimer returns a timer of duration seconds.
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) *Timer {
	t.timesFinished = 0
	if t.Mode == TimerOnce && t.finished {
		return t
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return t
	}
	if t.Mode == TimerRepeating && t.Duration > 0 {
		for t.elapsed >= t.Duration {
			t.elapsed -= t.Duration
			t.timesFinished++
		}
		t.finished = true
		return t
	}
	t.elapsed = t.Duration
	t.finished = true
	t.timesFinished = 1
	return t
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool { return t.timesFinished > 0 }

// TimesFinished reports how many periods the last Tick completed.
func (t *Timer) TimesFinished() int { return t.timesFinished }

// Finished reports whether the timer has completed at least once.
func (t *Timer) Finished() bool { return t.finished }

// Fraction returns the progress through the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return t.elapsed / t.Duration
}

// Reset starts the timer over.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
