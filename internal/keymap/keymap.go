package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "notification", "history"
}

// Bindings contains all key bindings, in help display order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionShowDefault, []string{"0"}, "Show notification", "global"},
	{ActionShowInfo, []string{"1"}, "Show info", "global"},
	{ActionShowSuccess, []string{"2"}, "Show success", "global"},
	{ActionShowWarning, []string{"3"}, "Show warning", "global"},
	{ActionShowError, []string{"4"}, "Show error", "global"},
	{ActionCompose, []string{"n"}, "Compose notification", "global"},
	{ActionClose, []string{"c"}, "Close notification", "global"},
	{ActionDismiss, []string{"esc"}, "Dismiss notification", "global"},
	{ActionFocusToast, []string{"tab"}, "Focus notification", "global"},
	{ActionCycleVariant, []string{"v"}, "Cycle variant", "global"},
	{ActionToggleExpiry, []string{"p"}, "Toggle auto-dismiss", "global"},
	{ActionToggleDismissible, []string{"d"}, "Toggle dismissible", "global"},
	{ActionToggleAutoFocus, []string{"a"}, "Toggle autofocus", "global"},
	{ActionHistory, []string{"h"}, "Notification history", "global"},

	// Focused notification
	{ActionActivate, []string{"enter", " "}, "Close", "notification"},
	{ActionDismiss, []string{"esc"}, "Dismiss", "notification"},
	{ActionFocusToast, []string{"tab"}, "Return focus", "notification"},

	// History popup
	{ActionMoveDown, []string{"j", "down"}, "Scroll down", "history"},
	{ActionMoveUp, []string{"k", "up"}, "Scroll up", "history"},
	{ActionClearHistory, []string{"X"}, "Clear history", "history"},
	{ActionHistory, []string{"h", "esc"}, "Close history", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
