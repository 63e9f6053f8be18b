// Package alert implements the lifecycle of a single dismissible
// notification: shown, dismissing, retired.
//
// A Controller owns the auto-expiry timer, the cancel-key subscription and
// the interaction pause state, and projects them into a Directive for the
// renderer. It is driven from one goroutine; every transition happens
// synchronously inside the call that triggered it.
package alert

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/notice/internal/clock"
	"github.com/llehouerou/notice/internal/keysource"
)

const (
	// GraceInterval separates Dismissing from Retired. The renderer's exit
	// transition must last exactly this long.
	GraceInterval = 300 * time.Millisecond

	// CancelKey dismisses a dismissible notification.
	CancelKey = "esc"
)

// Deps are the collaborators a Controller schedules and listens against.
type Deps struct {
	// Scheduler runs the expiry and grace timers. Without one, dismissal
	// retires immediately and auto-expiry is disabled.
	Scheduler clock.Scheduler
	// Keys is the document-wide key source. Nil disables the cancel key.
	Keys *keysource.Source
	// OnDismiss is called exactly once, on entry to Retired. May be nil.
	OnDismiss func()
	Logger    zerolog.Logger
	// Now stamps ShownAt/RetiredAt. Defaults to time.Now.
	Now func() time.Time
}

// Controller is one notification instance.
type Controller struct {
	cfg     Config
	content Content
	deps    Deps
	log     zerolog.Logger

	phase  Phase
	reason Reason

	pointerInside bool
	focusInside   bool

	expiry    clock.Timer
	expiryGen uint64
	grace     clock.Timer
	graceGen  uint64
	keySub    *keysource.Subscription

	focusPending bool
	notified     bool

	shownAt   time.Time
	retiredAt time.Time
}

// Open creates an instance in response to the open signal becoming true.
// The instance starts Visible with its timer and key listener armed.
func Open(cfg Config, content Content, deps Deps) *Controller {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	c := &Controller{
		cfg:          cfg,
		content:      content,
		deps:         deps,
		phase:        PhaseVisible,
		focusPending: cfg.AutoFocus,
	}
	c.log = deps.Logger.With().
		Str("severity", cfg.Severity.String()).
		Str("title", content.Title).
		Logger()
	c.shownAt = deps.Now()

	c.log.Debug().
		Dur("auto_expiry", cfg.Expiry()).
		Bool("dismissible", cfg.Dismissible).
		Msg("notification shown")

	c.syncExpiry(false)
	c.syncKeys()
	return c
}

// SetOpen feeds the caller's open signal. Dropping it while Visible runs the
// normal exit path; raising it never revives an instance.
func (c *Controller) SetOpen(open bool) {
	if !open {
		c.Dismiss(ReasonControlled)
	}
}

// Dismiss begins dismissal. It is a no-op outside Visible and reports
// whether this call started the transition.
func (c *Controller) Dismiss(reason Reason) bool {
	if c.phase != PhaseVisible {
		return false
	}
	c.phase = PhaseDismissing
	c.reason = reason
	c.focusPending = false
	c.syncExpiry(false)
	c.syncKeys()

	c.log.Info().Str("reason", reason.String()).Msg("notification dismissing")

	if c.deps.Scheduler == nil {
		c.retire()
		return true
	}
	c.graceGen++
	gen := c.graceGen
	c.grace = c.deps.Scheduler.AfterFunc(GraceInterval, func() { c.finishGrace(gen) })
	return true
}

// Destroy releases every timer and listener at once, whatever the phase.
// The dismissal callback still fires if it has not yet.
func (c *Controller) Destroy() {
	if c.phase == PhaseRetired {
		return
	}
	if c.phase == PhaseVisible {
		c.reason = ReasonDestroyed
	}
	c.retire()
}

// PointerEnter records the pointer entering the notification.
func (c *Controller) PointerEnter() { c.setInteraction(&c.pointerInside, true) }

// PointerLeave records the pointer leaving the notification.
func (c *Controller) PointerLeave() { c.setInteraction(&c.pointerInside, false) }

// FocusIn records input focus entering the notification.
func (c *Controller) FocusIn() { c.setInteraction(&c.focusInside, true) }

// FocusOut records input focus leaving the notification.
func (c *Controller) FocusOut() { c.setInteraction(&c.focusInside, false) }

func (c *Controller) setInteraction(flag *bool, inside bool) {
	if c.phase == PhaseRetired || *flag == inside {
		return
	}
	wasPaused := c.Paused()
	*flag = inside
	if c.Paused() == wasPaused {
		return
	}
	c.log.Debug().Bool("paused", !wasPaused).Msg("interaction changed")
	c.syncExpiry(false)
}

// SetAutoExpiry changes the expiry duration. A running countdown is
// cancelled and, if still applicable, restarted with the new duration.
func (c *Controller) SetAutoExpiry(d time.Duration) {
	if c.phase == PhaseRetired || d == c.cfg.AutoExpiry {
		return
	}
	c.cfg.AutoExpiry = d
	c.syncExpiry(true)
}

// SetDismissible toggles the close affordance and the cancel key.
func (c *Controller) SetDismissible(dismissible bool) {
	if c.phase == PhaseRetired || dismissible == c.cfg.Dismissible {
		return
	}
	c.cfg.Dismissible = dismissible
	c.syncKeys()
}

// TakeFocusRequest returns the one-shot focus request and clears it.
func (c *Controller) TakeFocusRequest() bool {
	pending := c.focusPending
	c.focusPending = false
	return pending
}

// Directive projects the current state for the renderer.
func (c *Controller) Directive() Directive {
	a := Announce(c.cfg.Severity)
	return Directive{
		Visible:          c.phase == PhaseVisible,
		Mounted:          c.phase != PhaseRetired,
		Phase:            c.phase,
		Severity:         c.cfg.Severity,
		Variant:          c.cfg.Variant,
		Role:             RoleStatus,
		Atomic:           true,
		Urgency:          a.Urgency,
		Prefix:           a.Prefix,
		KeyListenerArmed: c.KeyListenerActive(),
		RequestFocus:     c.focusPending,
		Focusable:        c.cfg.AutoFocus,
		Paused:           c.Paused(),
		Dismissible:      c.cfg.Dismissible,
		CloseLabel:       CloseLabel,
		HeadingLevel:     c.cfg.Heading(),
		Title:            c.content.Title,
		Message:          c.content.Message,
	}
}

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Reason returns what started dismissal (ReasonNone while Visible).
func (c *Controller) Reason() Reason { return c.reason }

// Config returns the effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Content returns the notification text.
func (c *Controller) Content() Content { return c.content }

// ShownAt returns when the instance was opened.
func (c *Controller) ShownAt() time.Time { return c.shownAt }

// RetiredAt returns when the instance retired (zero before that).
func (c *Controller) RetiredAt() time.Time { return c.retiredAt }

// Paused reports whether interaction currently suspends the countdown.
func (c *Controller) Paused() bool {
	return c.cfg.PausesOnInteraction() && (c.pointerInside || c.focusInside)
}

// TimerArmed reports whether an expiry callback is scheduled.
func (c *Controller) TimerArmed() bool { return c.expiry != nil }

// KeyListenerActive reports whether the cancel-key subscription is live.
func (c *Controller) KeyListenerActive() bool { return c.keySub.Active() }

func (c *Controller) wantExpiry() bool {
	return c.phase == PhaseVisible &&
		c.cfg.Expiry() > 0 &&
		!c.Paused() &&
		c.deps.Scheduler != nil
}

// syncExpiry reconciles the expiry timer with the arming conditions.
// The old handle is always stopped before a new one is scheduled.
func (c *Controller) syncExpiry(restart bool) {
	want := c.wantExpiry()
	if c.expiry != nil && (!want || restart) {
		c.stopExpiry()
	}
	if want && c.expiry == nil {
		c.expiryGen++
		gen := c.expiryGen
		c.expiry = c.deps.Scheduler.AfterFunc(c.cfg.Expiry(), func() { c.expire(gen) })
		c.log.Debug().Dur("after", c.cfg.Expiry()).Msg("expiry armed")
	}
}

func (c *Controller) stopExpiry() {
	if c.expiry == nil {
		return
	}
	c.expiry.Stop()
	c.expiry = nil
	// a tick already in flight carries the old generation and is dropped
	c.expiryGen++
	c.log.Debug().Msg("expiry cancelled")
}

func (c *Controller) expire(gen uint64) {
	if gen != c.expiryGen || c.expiry == nil || c.phase != PhaseVisible {
		return
	}
	c.expiry = nil
	c.Dismiss(ReasonExpiry)
}

func (c *Controller) syncKeys() {
	want := c.phase == PhaseVisible && c.cfg.Dismissible && c.deps.Keys != nil
	if !want && c.keySub != nil {
		c.keySub.Cancel()
		c.keySub = nil
		c.log.Debug().Msg("cancel key released")
	}
	if want && c.keySub == nil {
		c.keySub = c.deps.Keys.Subscribe(c.onKey)
		c.log.Debug().Msg("cancel key armed")
	}
}

func (c *Controller) onKey(key string) {
	if key != CancelKey || c.keySub == nil || !c.cfg.Dismissible {
		return
	}
	c.Dismiss(ReasonKey)
}

func (c *Controller) finishGrace(gen uint64) {
	if gen != c.graceGen || c.phase != PhaseDismissing {
		return
	}
	c.grace = nil
	c.retire()
}

// retire enters the terminal phase: everything is released before the
// callback runs, so a callback that re-enters the controller sees Retired.
func (c *Controller) retire() {
	c.phase = PhaseRetired
	c.focusPending = false
	c.stopExpiry()
	c.syncKeys()
	if c.grace != nil {
		c.grace.Stop()
		c.grace = nil
		c.graceGen++
	}
	c.retiredAt = c.deps.Now()

	c.log.Info().
		Str("reason", c.reason.String()).
		Dur("shown_for", c.retiredAt.Sub(c.shownAt)).
		Msg("notification retired")

	if c.notified {
		return
	}
	c.notified = true
	if c.deps.OnDismiss != nil {
		c.deps.OnDismiss()
	}
}
