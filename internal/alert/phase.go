package alert

// Phase is a notification's lifecycle position. Phases only move forward:
// Visible, then Dismissing, then Retired.
type Phase int

const (
	PhaseVisible Phase = iota
	PhaseDismissing
	PhaseRetired
)

func (p Phase) String() string {
	switch p {
	case PhaseVisible:
		return "visible"
	case PhaseDismissing:
		return "dismissing"
	case PhaseRetired:
		return "retired"
	}
	return "unknown"
}

// Reason records what started dismissal.
type Reason int

const (
	ReasonNone       Reason = iota
	ReasonClose             // close affordance activated
	ReasonKey               // cancel key pressed
	ReasonExpiry            // auto-expiry timer fired
	ReasonControlled        // caller dropped the open signal
	ReasonDestroyed         // owner unmounted the instance
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonClose:
		return "close"
	case ReasonKey:
		return "key"
	case ReasonExpiry:
		return "expiry"
	case ReasonControlled:
		return "controlled"
	case ReasonDestroyed:
		return "destroyed"
	}
	return "unknown"
}
