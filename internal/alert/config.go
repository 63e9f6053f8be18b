package alert

import "time"

// Config is supplied once per notification instance.
type Config struct {
	Severity    Severity
	Variant     Variant
	Dismissible bool // close affordance and cancel key

	// AutoExpiry starts dismissal after the notification has been shown,
	// unpaused, for this long. Zero or negative disables it.
	AutoExpiry time.Duration

	// PauseOnInteraction suspends the expiry countdown while the pointer or
	// input focus is inside the notification. Nil means true.
	PauseOnInteraction *bool

	// AutoFocus moves input focus to the notification when it is shown.
	AutoFocus bool

	// HeadingLevel renders the title as a heading of this level (2-6).
	// Any other value renders it as plain emphasis.
	HeadingLevel int
}

// Bool returns a pointer to v, for optional Config fields.
func Bool(v bool) *bool {
	return &v
}

// Expiry returns the effective auto-expiry duration (0 when disabled).
func (c Config) Expiry() time.Duration {
	if c.AutoExpiry <= 0 {
		return 0
	}
	return c.AutoExpiry
}

// PausesOnInteraction returns the effective pause-on-interaction flag.
func (c Config) PausesOnInteraction() bool {
	return c.PauseOnInteraction == nil || *c.PauseOnInteraction
}

// Heading returns the effective heading level, or 0 for emphasis.
func (c Config) Heading() int {
	if c.HeadingLevel < 2 || c.HeadingLevel > 6 {
		return 0
	}
	return c.HeadingLevel
}

// Content is what the notification says.
type Content struct {
	Title   string
	Message string
}
