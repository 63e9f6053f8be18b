package alert

import "strings"

// Severity classifies a notification. It drives announcement urgency and
// styling, never behavior.
type Severity string

const (
	SeverityDefault Severity = "default"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Severities lists all severities in display order.
var Severities = []Severity{
	SeverityDefault,
	SeverityInfo,
	SeveritySuccess,
	SeverityWarning,
	SeverityError,
}

// ParseSeverity maps a name to a Severity. Unknown names map to
// SeverityDefault with ok=false.
func ParseSeverity(s string) (sev Severity, ok bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityDefault, "":
		return SeverityDefault, true
	case SeverityInfo:
		return SeverityInfo, true
	case SeveritySuccess:
		return SeveritySuccess, true
	case SeverityWarning, "warn":
		return SeverityWarning, true
	case SeverityError:
		return SeverityError, true
	}
	return SeverityDefault, false
}

func (s Severity) String() string {
	if s == "" {
		return string(SeverityDefault)
	}
	return string(s)
}

// Variant selects the visual treatment. The controller passes it through.
type Variant string

const (
	VariantFilled   Variant = "filled"
	VariantOutlined Variant = "outlined"
	VariantSoft     Variant = "soft"
)

// ParseVariant maps a name to a Variant. Unknown names map to
// VariantOutlined with ok=false.
func ParseVariant(s string) (v Variant, ok bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantOutlined, "":
		return VariantOutlined, true
	case VariantFilled:
		return VariantFilled, true
	case VariantSoft:
		return VariantSoft, true
	}
	return VariantOutlined, false
}
