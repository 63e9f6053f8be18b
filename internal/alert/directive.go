package alert

// Accessibility constants shared with the rendering side.
const (
	// RoleStatus is the role the rendered root exposes.
	RoleStatus = "status"
	// CloseLabel is the accessible name of the close affordance.
	CloseLabel = "Close notification"
)

// Directive is what the renderer should draw for one pass.
type Directive struct {
	Visible bool // drives the exit transition styling
	Mounted bool // false once retired: render nothing

	Phase    Phase
	Severity Severity
	Variant  Variant

	Role    string
	Atomic  bool // announce content changes as one unit
	Urgency Urgency
	Prefix  string // announced before the message, never drawn

	KeyListenerArmed bool
	RequestFocus     bool // move input focus to the root this pass
	Focusable        bool // root joins the tab order
	Paused           bool

	Dismissible  bool
	CloseLabel   string
	HeadingLevel int // 0: render the title as emphasis

	Title   string
	Message string
}

// Announcement returns the text a screen reader should speak, prefix first.
func (d Directive) Announcement() string {
	text := d.Title
	if d.Message != "" {
		if text != "" {
			text += ". "
		}
		text += d.Message
	}
	return d.Prefix + text
}
