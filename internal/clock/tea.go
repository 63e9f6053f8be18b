package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var teaSchedulerSeq atomic.Uint64

// FireMsg is delivered by a Tea scheduler's tick when a timer falls due.
type FireMsg struct {
	Scheduler uint64
	ID        uint64
}

// Tea schedules timers as bubbletea ticks. A tick cannot be cancelled once
// it is in flight, so Stop only forgets the timer ID; when the stale tick
// arrives, Handle drops it.
//
// Tea must only be used from the bubbletea update goroutine.
type Tea struct {
	id      uint64
	next    uint64
	live    map[uint64]func()
	pending []tea.Cmd
}

type teaTimer struct {
	s  *Tea
	id uint64
}

// Compile-time check that Tea implements Scheduler.
var _ Scheduler = (*Tea)(nil)

// NewTea creates a scheduler with its own ID space.
func NewTea() *Tea {
	return &Tea{
		id:   teaSchedulerSeq.Add(1),
		live: make(map[uint64]func()),
	}
}

// AfterFunc registers fn and queues a tick for it. The tick is only sent to
// the program once the caller returns Cmd() from its Update.
func (s *Tea) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.next++
	id := s.next
	s.live[id] = fn
	sched := s.id
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{Scheduler: sched, ID: id}
	}))
	return &teaTimer{s: s, id: id}
}

// Cmd drains queued ticks into a single command (nil when there are none).
func (s *Tea) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Owns reports whether msg was produced by this scheduler.
func (s *Tea) Owns(msg FireMsg) bool {
	return msg.Scheduler == s.id
}

// Handle runs the callback for msg if its timer is still live.
// It returns false for stale or foreign ticks.
func (s *Tea) Handle(msg FireMsg) bool {
	if !s.Owns(msg) {
		return false
	}
	fn, ok := s.live[msg.ID]
	if !ok {
		return false
	}
	delete(s.live, msg.ID)
	if fn != nil {
		fn()
	}
	return true
}

// Live returns the number of timers that are scheduled and not stopped.
func (s *Tea) Live() int {
	return len(s.live)
}

func (t *teaTimer) Stop() bool {
	if _, ok := t.s.live[t.id]; !ok {
		return false
	}
	delete(t.s.live, t.id)
	return true
}
