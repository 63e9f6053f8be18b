package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnounce(t *testing.T) {
	tests := []struct {
		sev     Severity
		urgency Urgency
		prefix  string
	}{
		{SeverityDefault, UrgencyPolite, ""},
		{SeverityInfo, UrgencyPolite, "Info: "},
		{SeveritySuccess, UrgencyPolite, "Success: "},
		{SeverityWarning, UrgencyPolite, "Warning: "},
		{SeverityError, UrgencyAssertive, "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.sev.String(), func(t *testing.T) {
			a := Announce(tt.sev)
			assert.Equal(t, tt.urgency, a.Urgency)
			assert.Equal(t, tt.prefix, a.Prefix)
		})
	}
}

func TestDirective_Projection(t *testing.T) {
	c := Open(Config{
		Severity:     SeverityError,
		Variant:      VariantFilled,
		Dismissible:  true,
		HeadingLevel: 3,
	}, Content{Title: "Upload failed", Message: "Disk is full"}, Deps{})

	d := c.Directive()
	assert.True(t, d.Visible)
	assert.True(t, d.Mounted)
	assert.Equal(t, RoleStatus, d.Role)
	assert.True(t, d.Atomic)
	assert.Equal(t, UrgencyAssertive, d.Urgency)
	assert.Equal(t, "Error: ", d.Prefix)
	assert.Equal(t, CloseLabel, d.CloseLabel)
	assert.Equal(t, 3, d.HeadingLevel)
	assert.Equal(t, VariantFilled, d.Variant)
	assert.False(t, d.KeyListenerArmed, "no key source wired")
	assert.Equal(t, "Error: Upload failed. Disk is full", d.Announcement())
}

func TestDirective_Announcement(t *testing.T) {
	assert.Equal(t, "Info: Body", Directive{Prefix: "Info: ", Message: "Body"}.Announcement())
	assert.Equal(t, "Title", Directive{Title: "Title"}.Announcement())
	assert.Empty(t, Directive{}.Announcement())
}

func TestConfig_Normalization(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		expiry  time.Duration
		pauses  bool
		heading int
	}{
		{"zero value", Config{}, 0, true, 0},
		{"negative expiry", Config{AutoExpiry: -time.Second}, 0, true, 0},
		{"explicit no pause", Config{PauseOnInteraction: Bool(false)}, 0, false, 0},
		{"heading in range", Config{HeadingLevel: 6}, 0, true, 6},
		{"heading too small", Config{HeadingLevel: 1}, 0, true, 0},
		{"heading too large", Config{HeadingLevel: 7}, 0, true, 0},
		{"expiry set", Config{AutoExpiry: 3 * time.Second}, 3 * time.Second, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expiry, tt.cfg.Expiry())
			assert.Equal(t, tt.pauses, tt.cfg.PausesOnInteraction())
			assert.Equal(t, tt.heading, tt.cfg.Heading())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range Severities {
		got, ok := ParseSeverity(string(s))
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}

	got, ok := ParseSeverity("WARN")
	assert.True(t, ok)
	assert.Equal(t, SeverityWarning, got)

	got, ok = ParseSeverity("catastrophic")
	assert.False(t, ok)
	assert.Equal(t, SeverityDefault, got)
}

func TestParseVariant(t *testing.T) {
	got, ok := ParseVariant("Soft")
	assert.True(t, ok)
	assert.Equal(t, VariantSoft, got)

	got, ok = ParseVariant("")
	assert.True(t, ok)
	assert.Equal(t, VariantOutlined, got)

	got, ok = ParseVariant("glossy")
	assert.False(t, ok)
	assert.Equal(t, VariantOutlined, got)
}

func TestPhaseAndReasonStrings(t *testing.T) {
	assert.Equal(t, "visible", PhaseVisible.String())
	assert.Equal(t, "dismissing", PhaseDismissing.String())
	assert.Equal(t, "retired", PhaseRetired.String())
	assert.Equal(t, "expiry", ReasonExpiry.String())
	assert.Equal(t, "controlled", ReasonControlled.String())
}
