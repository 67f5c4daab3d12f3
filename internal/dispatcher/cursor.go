package dispatcher

import (
	"strings"

	"github.com/dshills/markstorm/internal/engine"
	"github.com/dshills/markstorm/internal/input"
)

// CursorHandler translates cursor.* actions into engine motions.
type CursorHandler struct {
	eng *engine.Engine
}

// NewCursorHandler creates the handler for cursor actions.
func NewCursorHandler(eng *engine.Engine) *CursorHandler {
	return &CursorHandler{eng: eng}
}

// Namespace implements Handler.
func (h *CursorHandler) Namespace() string {
	return "cursor"
}

// CanHandle implements Handler.
func (h *CursorHandler) CanHandle(name string) bool {
	return strings.HasPrefix(name, "cursor.")
}

// Handle implements Handler.
func (h *CursorHandler) Handle(action input.Action) Result {
	switch action.Name {
	case input.ActionCursorLeft:
		h.eng.MoveLeft(false)
	case input.ActionCursorRight:
		h.eng.MoveRight(false)
	case input.ActionCursorUp:
		h.eng.MoveUp(false)
	case input.ActionCursorDown:
		h.eng.MoveDown(false)
	case input.ActionCursorLineStart:
		h.eng.MoveLineStart(false)
	case input.ActionCursorLineEnd:
		h.eng.MoveLineEnd(false)
	case input.ActionCursorDocStart:
		h.eng.MoveDocStart(false)
	case input.ActionCursorDocEnd:
		h.eng.MoveDocEnd(false)
	case input.ActionSelectLeft:
		h.eng.MoveLeft(true)
	case input.ActionSelectRight:
		h.eng.MoveRight(true)
	case input.ActionSelectUp:
		h.eng.MoveUp(true)
	case input.ActionSelectDown:
		h.eng.MoveDown(true)
	case input.ActionSelectLineStart:
		h.eng.MoveLineStart(true)
	case input.ActionSelectLineEnd:
		h.eng.MoveLineEnd(true)
	case input.ActionSelectDocStart:
		h.eng.MoveDocStart(true)
	case input.ActionSelectDocEnd:
		h.eng.MoveDocEnd(true)
	default:
		return Ignored()
	}
	return Handled()
}
