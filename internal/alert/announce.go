package alert

// Urgency is the assistive-technology announcement priority.
type Urgency string

const (
	// UrgencyPolite queues the announcement behind current speech.
	UrgencyPolite Urgency = "polite"
	// UrgencyAssertive interrupts current speech.
	UrgencyAssertive Urgency = "assertive"
)

// Announcement is how a severity is presented to non-visual users.
type Announcement struct {
	Urgency Urgency
	// Prefix precedes the message in the announcement only; it is never
	// rendered for sighted users.
	Prefix string
}

var severityPrefixes = map[Severity]string{
	SeverityDefault: "",
	SeverityInfo:    "Info: ",
	SeveritySuccess: "Success: ",
	SeverityWarning: "Warning: ",
	SeverityError:   "Error: ",
}

// Announce maps a severity to its announcement. Only errors interrupt.
func Announce(sev Severity) Announcement {
	a := Announcement{Urgency: UrgencyPolite, Prefix: severityPrefixes[sev]}
	if sev == SeverityError {
		a.Urgency = UrgencyAssertive
	}
	return a
}
