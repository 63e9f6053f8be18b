package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpKeys adapts bindings of one context to the bubbles help view.
type HelpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

var _ help.KeyMap = HelpKeys{}

// footerActions are the global actions listed in the one-line footer.
var footerActions = []Action{
	ActionShowInfo,
	ActionShowError,
	ActionCompose,
	ActionDismiss,
	ActionFocusToast,
	ActionHistory,
	ActionHelp,
	ActionQuit,
}

// NewHelpKeys builds the help key map for a context. The short help lists
// the footer actions present in the context; the full help has one column
// per group of five bindings.
func NewHelpKeys(context string) HelpKeys {
	var hk HelpKeys
	var column []key.Binding
	for _, b := range ByContext(context) {
		kb := toKeyBinding(b)
		column = append(column, kb)
		if len(column) == 5 {
			hk.full = append(hk.full, column)
			column = nil
		}
		for _, a := range footerActions {
			if a == b.Action {
				hk.short = append(hk.short, kb)
			}
		}
	}
	if len(column) > 0 {
		hk.full = append(hk.full, column)
	}
	return hk
}

// ShortHelp implements help.KeyMap.
func (h HelpKeys) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h HelpKeys) FullHelp() [][]key.Binding { return h.full }

func toKeyBinding(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey(b.Keys), strings.ToLower(b.Description)),
	)
}

// helpKey renders the keys of a binding the way the footer shows them.
func helpKey(keys []string) string {
	shown := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		shown = append(shown, k)
	}
	return strings.Join(shown, "/")
}
