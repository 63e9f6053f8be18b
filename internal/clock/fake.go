package clock

import "time"

// Fake is a simulated monotonic clock. Callbacks run synchronously inside
// Advance, in deadline order (creation order breaks ties).
// It is not safe for concurrent use.
type Fake struct {
	now    time.Duration
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *Fake
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Compile-time check that Fake implements Scheduler.
var _ Scheduler = (*Fake)(nil)

// NewFake returns a clock positioned at t=0.
func NewFake() *Fake {
	return &Fake{}
}

// Now returns the simulated time elapsed since the clock was created.
func (f *Fake) Now() time.Duration {
	return f.now
}

// AfterFunc schedules fn to run once the clock has advanced by d.
// Negative durations are treated as zero.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	f.seq++
	t := &fakeTimer{clock: f, at: f.now + d, seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that falls due.
// Timers scheduled by a callback fire in the same call if they fall due
// before the new time.
func (f *Fake) Advance(d time.Duration) {
	target := f.now + d
	for {
		next := f.nextDue(target)
		if next == nil {
			break
		}
		f.remove(next)
		f.now = next.at
		next.fired = true
		if next.fn != nil {
			next.fn()
		}
	}
	f.now = target
}

// AdvanceTo moves the clock to the absolute simulated time at.
// Times in the past are ignored.
func (f *Fake) AdvanceTo(at time.Duration) {
	if at > f.now {
		f.Advance(at - f.now)
	}
}

// Pending returns the number of timers that have not fired or been stopped.
func (f *Fake) Pending() int {
	return len(f.timers)
}

func (f *Fake) nextDue(limit time.Duration) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.at > limit {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (f *Fake) remove(t *fakeTimer) {
	for i, other := range f.timers {
		if other == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}
