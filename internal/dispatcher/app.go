package dispatcher

import (
	"strings"

	"github.com/dshills/markstorm/internal/input"
)

// AppHandler translates app.* actions into shell callbacks. The app
// wires its save and quit behavior in; the handler stays free of
// front-end dependencies.
type AppHandler struct {
	// Save persists the document. May be nil when no file is open.
	Save func() error

	// Quit asks the app loop to stop.
	Quit func()
}

// Namespace implements Handler.
func (h *AppHandler) Namespace() string {
	return "app"
}

// CanHandle implements Handler.
func (h *AppHandler) CanHandle(name string) bool {
	return strings.HasPrefix(name, "app.")
}

// Handle implements Handler.
func (h *AppHandler) Handle(action input.Action) Result {
	switch action.Name {
	case input.ActionSave:
		if h.Save == nil {
			return Ignored()
		}
		if err := h.Save(); err != nil {
			return Fail(err)
		}
	case input.ActionQuit:
		if h.Quit == nil {
			return Ignored()
		}
		h.Quit()
	default:
		return Ignored()
	}
	return Handled()
}
