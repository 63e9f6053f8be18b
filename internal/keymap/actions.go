// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Show a notification of a severity
	ActionShowDefault Action = "show_default"
	ActionShowInfo    Action = "show_info"
	ActionShowSuccess Action = "show_success"
	ActionShowWarning Action = "show_warning"
	ActionShowError   Action = "show_error"
	ActionCompose     Action = "compose" // n - type a custom message

	// Notification control
	ActionClose             Action = "close"              // c - drop the open signal
	ActionDismiss           Action = "dismiss"            // esc - delivered to the key source
	ActionFocusToast        Action = "focus_toast"        // tab
	ActionActivate          Action = "activate"           // enter/space on a focused toast
	ActionCycleVariant      Action = "cycle_variant"      // v
	ActionToggleExpiry      Action = "toggle_expiry"      // p - persistent notifications
	ActionToggleDismissible Action = "toggle_dismissible" // d
	ActionToggleAutoFocus   Action = "toggle_autofocus"   // a

	// History
	ActionHistory      Action = "history"       // h
	ActionClearHistory Action = "clear_history" // X
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
)
