// Package lua embeds a gopher-lua interpreter and exposes the editor
// to user scripts through a `markstorm` table. Script errors are
// logged and swallowed; a broken init.lua must never take the editor
// down.
package lua

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/markstorm/internal/dispatcher"
	"github.com/dshills/markstorm/internal/engine"
	"github.com/dshills/markstorm/internal/input"
	"github.com/dshills/markstorm/internal/input/keymap"
	"github.com/dshills/markstorm/internal/log"
)

// Host owns the Lua state and the bridge functions scripts call.
type Host struct {
	L        *lua.LState
	eng      *engine.Engine
	keys     *keymap.Map
	dispatch func(input.Action) dispatcher.Result
	logger   *log.Logger
	onChange []*lua.LFunction
}

// New creates a host bound to the engine, keymap, and dispatcher. A
// nil logger is replaced with log.Discard.
func New(eng *engine.Engine, keys *keymap.Map, dispatch func(input.Action) dispatcher.Result, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Discard
	}
	h := &Host{
		L:        lua.NewState(),
		eng:      eng,
		keys:     keys,
		dispatch: dispatch,
		logger:   logger.WithComponent("lua"),
	}
	h.register()
	return h
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.L.Close()
}

// LoadFile runs a script file. A missing file is not an error; a
// failing script is logged and ignored.
func (h *Host) LoadFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := h.L.DoFile(path); err != nil {
		h.logger.Error("script %s: %v", path, err)
	}
}

// NotifyChange invokes every on_change callback with the new buffer
// revision. Callback errors are logged and the remaining callbacks
// still run.
func (h *Host) NotifyChange(revision uint64) {
	for _, fn := range h.onChange {
		err := h.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LNumber(revision))
		if err != nil {
			h.logger.Error("on_change callback: %v", err)
		}
	}
}

// register builds the markstorm table.
func (h *Host) register() {
	mod := h.L.NewTable()
	h.L.SetFuncs(mod, map[string]lua.LGFunction{
		"bind":       h.luaBind,
		"action":     h.luaAction,
		"line":       h.luaLine,
		"line_count": h.luaLineCount,
		"cursor":     h.luaCursor,
		"insert":     h.luaInsert,
		"on_change":  h.luaOnChange,
	})
	h.L.SetGlobal("markstorm", mod)
}

// markstorm.bind(chord, action) rebinds a key.
func (h *Host) luaBind(L *lua.LState) int {
	chord := L.CheckString(1)
	action := L.CheckString(2)
	if err := h.keys.Bind(chord, action); err != nil {
		L.RaiseError("bind: %v", err)
	}
	return 0
}

// markstorm.action(name [, args]) dispatches an action. Returns true
// when it was handled.
func (h *Host) luaAction(L *lua.LState) int {
	name := L.CheckString(1)
	action := input.Action{Name: name, Source: input.SourceScript}
	if L.GetTop() >= 2 {
		action.Args = tableToArgs(L.CheckTable(2))
	}

	res := h.dispatch(action)
	if res.Status == dispatcher.StatusError {
		L.RaiseError("action %s: %v", name, res.Err)
	}
	L.Push(lua.LBool(res.Status == dispatcher.StatusHandled))
	return 1
}

// markstorm.line(i) returns the text of 1-based line i, or nil when
// out of range.
func (h *Host) luaLine(L *lua.LState) int {
	i := L.CheckInt(1)
	text, err := h.eng.Buffer().LineText(i - 1)
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

// markstorm.line_count() returns the number of lines.
func (h *Host) luaLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.eng.Buffer().LineCount()))
	return 1
}

// markstorm.cursor() returns the 1-based line and column of the
// cursor.
func (h *Host) luaCursor(L *lua.LState) int {
	pos := h.eng.CursorPosition()
	L.Push(lua.LNumber(pos.Line + 1))
	L.Push(lua.LNumber(pos.Column + 1))
	return 2
}

// markstorm.insert(text) inserts text at the cursor.
func (h *Host) luaInsert(L *lua.LState) int {
	text := L.CheckString(1)
	if err := h.eng.InsertText(text); err != nil {
		L.RaiseError("insert: %v", err)
	}
	return 0
}

// markstorm.on_change(fn) registers a buffer-change callback.
func (h *Host) luaOnChange(L *lua.LState) int {
	fn := L.CheckFunction(1)
	h.onChange = append(h.onChange, fn)
	return 0
}

// tableToArgs converts a flat Lua table into action arguments. Only
// scalar values survive; anything else is stringified.
func tableToArgs(t *lua.LTable) map[string]any {
	args := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		key := k.String()
		switch val := v.(type) {
		case lua.LBool:
			args[key] = bool(val)
		case lua.LNumber:
			args[key] = float64(val)
		case lua.LString:
			args[key] = string(val)
		default:
			args[key] = fmt.Sprintf("%v", v)
		}
	})
	return args
}
