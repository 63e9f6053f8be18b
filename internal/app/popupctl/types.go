// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
	History
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Help,
	Confirm,
	TextInput,
	History,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	History,
	TextInput,
	Confirm,
	Help,
}

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Confirm:
		return "confirm"
	case TextInput:
		return "textinput"
	case History:
		return "history"
	case None:
	}
	return "none"
}
