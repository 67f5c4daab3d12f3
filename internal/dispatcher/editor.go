package dispatcher

import (
	"strings"

	"github.com/dshills/markstorm/internal/engine"
	"github.com/dshills/markstorm/internal/input"
)

// EditorHandler translates editor.* actions into engine calls.
type EditorHandler struct {
	eng *engine.Engine
}

// NewEditorHandler creates the handler for editor actions.
func NewEditorHandler(eng *engine.Engine) *EditorHandler {
	return &EditorHandler{eng: eng}
}

// Namespace implements Handler.
func (h *EditorHandler) Namespace() string {
	return "editor"
}

// CanHandle implements Handler.
func (h *EditorHandler) CanHandle(name string) bool {
	return strings.HasPrefix(name, "editor.")
}

// Handle implements Handler.
func (h *EditorHandler) Handle(action input.Action) Result {
	var err error
	switch action.Name {
	case input.ActionIndent:
		err = h.eng.Indent()
	case input.ActionOutdent:
		err = h.eng.Outdent()
	case input.ActionNewline:
		err = h.eng.Newline()
	case input.ActionLineBreak:
		err = h.eng.LineBreak()
	case input.ActionHardNewline:
		err = h.eng.HardNewline(action.BoolArg("break"))
	case input.ActionHardLineBreak:
		err = h.eng.HardNewline(true)
	case input.ActionBackspace:
		err = h.eng.Backspace()
	case input.ActionDeleteForward:
		err = h.eng.DeleteForward()
	case input.ActionInsertText:
		err = h.eng.InsertText(action.StringArg("text"))
	case input.ActionBold:
		err = h.eng.WrapFormatting(engine.MarkupBold)
	case input.ActionItalic:
		err = h.eng.WrapFormatting(engine.MarkupItalic)
	case input.ActionStrikethrough:
		err = h.eng.WrapFormatting(engine.MarkupStrikethrough)
	case input.ActionComment:
		err = h.eng.InsertComment()
	case input.ActionBulletList:
		err = h.eng.PrefixBlocks("- ")
	case input.ActionTaskList:
		err = h.eng.PrefixBlocks("- [ ] ")
	case input.ActionBlockquote:
		err = h.eng.PrefixBlocks("> ")
	case input.ActionNumberedList:
		err = h.eng.CreateNumberedList('.')
	case input.ActionRemoveBlockquote:
		err = h.eng.RemoveBlockquote()
	case input.ActionToggleTask:
		err = h.eng.ToggleTaskComplete()
	case input.ActionToggleHemingway:
		cfg := h.eng.Config()
		cfg.Hemingway = !cfg.Hemingway
		h.eng.SetConfig(cfg)
	case input.ActionUndo:
		err = h.eng.Undo()
	case input.ActionRedo:
		err = h.eng.Redo()
	case input.ActionSelectAll:
		h.eng.SelectAll()
	default:
		return Ignored()
	}
	if err != nil {
		return Fail(err)
	}
	return Handled()
}
