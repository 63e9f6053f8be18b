package clock

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickMsg runs a single-tick command and returns its FireMsg.
func tickMsg(t *testing.T, cmd tea.Cmd) FireMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	fire, ok := msg.(FireMsg)
	require.True(t, ok, "expected FireMsg, got %T", msg)
	return fire
}

func TestTea_HandleRunsLiveTimerOnce(t *testing.T) {
	s := NewTea()
	calls := 0
	s.AfterFunc(time.Millisecond, func() { calls++ })

	msg := tickMsg(t, s.Cmd())
	assert.True(t, s.Handle(msg))
	assert.False(t, s.Handle(msg), "second delivery must be a no-op")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Live())
}

func TestTea_StoppedTimerTickIsDropped(t *testing.T) {
	s := NewTea()
	calls := 0
	timer := s.AfterFunc(time.Millisecond, func() { calls++ })
	cmd := s.Cmd()

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	assert.False(t, s.Handle(tickMsg(t, cmd)))
	assert.Equal(t, 0, calls)
}

func TestTea_CmdDrainsPending(t *testing.T) {
	s := NewTea()
	assert.Nil(t, s.Cmd())

	s.AfterFunc(time.Millisecond, func() {})
	assert.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "pending ticks must be drained")
}

func TestTea_IgnoresForeignTicks(t *testing.T) {
	a := NewTea()
	b := NewTea()
	calls := 0
	a.AfterFunc(time.Millisecond, func() { calls++ })
	b.AfterFunc(time.Millisecond, func() {})

	msg := tickMsg(t, b.Cmd())
	assert.False(t, a.Owns(msg))
	assert.False(t, a.Handle(msg))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, a.Live())
}
