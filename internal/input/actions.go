package input

// Editor actions mutate the document through the engine.
const (
	ActionIndent           = "editor.indent"
	ActionOutdent          = "editor.outdent"
	ActionNewline          = "editor.newline"
	ActionLineBreak        = "editor.lineBreak"
	ActionHardNewline      = "editor.hardNewline"
	ActionHardLineBreak    = "editor.hardLineBreak"
	ActionBackspace        = "editor.backspace"
	ActionDeleteForward    = "editor.deleteForward"
	ActionInsertText       = "editor.insertText"
	ActionBold             = "editor.bold"
	ActionItalic           = "editor.italic"
	ActionStrikethrough    = "editor.strikethrough"
	ActionComment          = "editor.comment"
	ActionBulletList       = "editor.bulletList"
	ActionNumberedList     = "editor.numberedList"
	ActionTaskList         = "editor.taskList"
	ActionBlockquote       = "editor.blockquote"
	ActionRemoveBlockquote = "editor.removeBlockquote"
	ActionToggleTask       = "editor.toggleTask"
	ActionToggleHemingway  = "editor.toggleHemingway"
	ActionUndo             = "editor.undo"
	ActionRedo             = "editor.redo"
	ActionSelectAll        = "editor.selectAll"
)

// Cursor actions move the cursor or grow the selection.
const (
	ActionCursorLeft      = "cursor.left"
	ActionCursorRight     = "cursor.right"
	ActionCursorUp        = "cursor.up"
	ActionCursorDown      = "cursor.down"
	ActionCursorLineStart = "cursor.lineStart"
	ActionCursorLineEnd   = "cursor.lineEnd"
	ActionCursorDocStart  = "cursor.docStart"
	ActionCursorDocEnd    = "cursor.docEnd"

	ActionSelectLeft      = "cursor.selectLeft"
	ActionSelectRight     = "cursor.selectRight"
	ActionSelectUp        = "cursor.selectUp"
	ActionSelectDown      = "cursor.selectDown"
	ActionSelectLineStart = "cursor.selectLineStart"
	ActionSelectLineEnd   = "cursor.selectLineEnd"
	ActionSelectDocStart  = "cursor.selectDocStart"
	ActionSelectDocEnd    = "cursor.selectDocEnd"
)

// Application actions target the shell, not the document.
const (
	ActionQuit = "app.quit"
	ActionSave = "app.save"
)
