// Package input defines the action values that flow from key bindings
// and scripts into the dispatcher.
package input

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceKeyboard indicates the action originated from a key binding.
	SourceKeyboard Source = iota
	// SourceScript indicates the action originated from a Lua script.
	SourceScript
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Action is a request for the dispatcher: a namespaced name like
// "editor.indent" or "cursor.left" plus optional arguments.
type Action struct {
	// Name is the namespaced action identifier.
	Name string

	// Args holds action-specific arguments, e.g. "text" for
	// editor.insertText.
	Args map[string]any

	// Source records where the action came from.
	Source Source
}

// New creates an action with no arguments.
func New(name string) Action {
	return Action{Name: name}
}

// WithArg returns a copy of the action with one argument set.
func (a Action) WithArg(key string, value any) Action {
	args := make(map[string]any, len(a.Args)+1)
	for k, v := range a.Args {
		args[k] = v
	}
	args[key] = value
	a.Args = args
	return a
}

// StringArg returns a string argument, or "" when absent or not a
// string.
func (a Action) StringArg(key string) string {
	if v, ok := a.Args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// BoolArg returns a bool argument, false when absent.
func (a Action) BoolArg(key string) bool {
	if v, ok := a.Args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
