package dashboard

// Action names a user command. Key presses resolve to actions through a
// KeyMap, and the terminal layer runs them through its dispatch table.
type Action string

const (
	ActionSend          Action = "send"
	ActionInsertNewline Action = "insert-newline"
	ActionClearInput    Action = "clear-input"
	ActionClearChat     Action = "clear-chat"
	ActionRefresh       Action = "refresh"
	ActionFocusNext     Action = "focus-next"
	ActionCursorUp      Action = "cursor-up"
	ActionCursorDown    Action = "cursor-down"
	ActionViewFile      Action = "view-file"
	ActionDeleteFile    Action = "delete-file"
	ActionConfirmDelete Action = "confirm-delete"
	ActionCancelDelete  Action = "cancel-delete"
	ActionCloseModal    Action = "close-modal"
	ActionCopyFile      Action = "copy-file"
	ActionDismissAlert  Action = "dismiss-alert"
	ActionQuit          Action = "quit"
)

// Context is the part of the dashboard that currently receives keys
type Context int

const (
	// ContextChat is the message input
	ContextChat Context = iota
	// ContextFiles is the file panel
	ContextFiles
	// ContextModal is the file viewer overlay
	ContextModal
	// ContextConfirm is the delete confirmation
	ContextConfirm
	// ContextAlert is a blocking error alert
	ContextAlert
)

func (c Context) String() string {
	switch c {
	case ContextChat:
		return "chat"
	case ContextFiles:
		return "files"
	case ContextModal:
		return "modal"
	case ContextConfirm:
		return "confirm"
	case ContextAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// KeyMap binds key strings to actions, per context, with global bindings
// applying when the context has none for a key.
type KeyMap struct {
	Global   map[string]Action
	Contexts map[Context]map[string]Action
}

// DefaultKeyMap returns the dashboard's key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Global: map[string]Action{
			"ctrl+c": ActionQuit,
			"ctrl+r": ActionRefresh,
			"ctrl+l": ActionClearChat,
		},
		Contexts: map[Context]map[string]Action{
			ContextChat: {
				"enter":     ActionSend,
				"alt+enter": ActionInsertNewline,
				"ctrl+j":    ActionInsertNewline,
				"esc":       ActionClearInput,
				"tab":       ActionFocusNext,
			},
			ContextFiles: {
				"up":     ActionCursorUp,
				"k":      ActionCursorUp,
				"down":   ActionCursorDown,
				"j":      ActionCursorDown,
				"enter":  ActionViewFile,
				"v":      ActionViewFile,
				"d":      ActionDeleteFile,
				"delete": ActionDeleteFile,
				"tab":    ActionFocusNext,
				"esc":    ActionFocusNext,
			},
			ContextModal: {
				"esc":   ActionCloseModal,
				"q":     ActionCloseModal,
				"enter": ActionCloseModal,
				"y":     ActionCopyFile,
			},
			ContextConfirm: {
				"y":   ActionConfirmDelete,
				"Y":   ActionConfirmDelete,
				"n":   ActionCancelDelete,
				"N":   ActionCancelDelete,
				"esc": ActionCancelDelete,
			},
			ContextAlert: {
				"enter": ActionDismissAlert,
				"esc":   ActionDismissAlert,
				" ":     ActionDismissAlert,
			},
		},
	}
}

// Resolve returns the action bound to key in ctx
func (k KeyMap) Resolve(ctx Context, key string) (Action, bool) {
	if action, ok := k.Contexts[ctx][key]; ok {
		return action, true
	}
	action, ok := k.Global[key]
	return action, ok
}

// Blocking reports whether the context captures every key, so unbound keys
// must not reach the input or the file panel.
func (c Context) Blocking() bool {
	return c == ContextModal || c == ContextConfirm || c == ContextAlert
}
