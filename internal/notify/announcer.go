package notify

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/notice/internal/alert"
)

// Announcer forwards a notification's announcement to the desktop.
// Only one desktop notification is kept: each announcement replaces the
// previous one.
type Announcer struct {
	notifier      Notifier
	assertiveOnly bool
	timeout       time.Duration
	lastID        uint32
	log           zerolog.Logger
}

// AnnouncerOptions configures an Announcer.
type AnnouncerOptions struct {
	AssertiveOnly bool          // skip polite announcements
	Timeout       time.Duration // desktop expiry; 0 = server default
	Logger        zerolog.Logger
}

// NewAnnouncer wraps n. A nil notifier makes every call a no-op.
func NewAnnouncer(n Notifier, opts AnnouncerOptions) *Announcer {
	return &Announcer{
		notifier:      n,
		assertiveOnly: opts.AssertiveOnly,
		timeout:       opts.Timeout,
		log:           opts.Logger,
	}
}

// UrgencyFor maps an announcement urgency to a desktop urgency.
func UrgencyFor(u alert.Urgency) Urgency {
	if u == alert.UrgencyAssertive {
		return UrgencyCritical
	}
	return UrgencyNormal
}

// Announce sends d's announcement. It reports whether anything was sent.
func (a *Announcer) Announce(d alert.Directive) (bool, error) {
	if a == nil || a.notifier == nil || !d.Mounted {
		return false, nil
	}
	if a.assertiveOnly && d.Urgency != alert.UrgencyAssertive {
		return false, nil
	}

	timeout := int32(-1)
	if a.timeout > 0 {
		timeout = int32(a.timeout / time.Millisecond) //nolint:gosec // configured in ms, far below int32 max
	}

	title, body := d.Prefix+d.Title, d.Message
	if d.Title == "" {
		title, body = d.Announcement(), ""
	}
	id, err := a.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Timeout:    timeout,
		ReplacesID: a.lastID,
		Urgency:    UrgencyFor(d.Urgency),
		Transient:  d.Urgency != alert.UrgencyAssertive,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("desktop notification failed")
		return false, err
	}
	a.lastID = id
	return true, nil
}

// Withdraw closes the last desktop notification, if any.
func (a *Announcer) Withdraw() error {
	if a == nil || a.notifier == nil || a.lastID == 0 {
		return nil
	}
	id := a.lastID
	a.lastID = 0
	return a.notifier.Close(id)
}
