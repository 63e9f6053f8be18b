package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/alert"
)

// Record describes a notification after it retired.
type Record struct {
	ID        uint64
	Severity  alert.Severity
	Content   alert.Content
	Reason    alert.Reason
	ShownAt   time.Time
	RetiredAt time.Time
}

// Shown returns how long the notification stayed on screen.
func (r Record) Shown() time.Duration {
	return r.RetiredAt.Sub(r.ShownAt)
}

// RetiredMsg reports that a notification finished its exit transition.
type RetiredMsg struct {
	Record Record
}

// AnnounceMsg carries the directive of a newly shown notification so the
// host can forward its announcement.
type AnnounceMsg struct {
	ID        uint64
	Directive alert.Directive
}

// FocusRequestMsg asks the host to route keys to the toast.
type FocusRequestMsg struct {
	ID uint64
}

// FadeMsg advances the exit animation. Frames of a replaced notification
// carry a stale version and are dropped.
type FadeMsg struct {
	Version uint64
	Frame   int
}

// fadeFrames is the number of exit animation steps across GraceInterval.
const fadeFrames = 6

// FadeStep is the delay between exit animation frames.
const FadeStep = alert.GraceInterval / fadeFrames

// FadeCmd returns a command that sends the next animation frame.
func FadeCmd(version uint64, frame int) tea.Cmd {
	return tea.Tick(FadeStep, func(time.Time) tea.Msg {
		return FadeMsg{Version: version, Frame: frame}
	})
}
