// Package app wires the editor together and runs the terminal event
// loop: engine, dispatcher, keymap, Lua host, config watcher, and
// renderer, initialized in dependency order.
package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/config/loader"
	"github.com/dshills/markstorm/internal/dispatcher"
	"github.com/dshills/markstorm/internal/engine"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/input/keymap"
	"github.com/dshills/markstorm/internal/log"
	luahost "github.com/dshills/markstorm/internal/plugin/lua"
	"github.com/dshills/markstorm/internal/renderer"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses defaults plus
	// the environment overlay.
	ConfigPath string

	// KeymapPath overrides the keymap file named in the config.
	KeymapPath string

	// InitScript is the Lua script run at startup.
	InitScript string

	// LogPath overrides the log file named in the config.
	LogPath string

	// File is the document to open. Empty starts an unnamed buffer.
	File string

	// Screen substitutes a prepared screen; tests pass a simulation
	// screen here. Nil means a real terminal.
	Screen tcell.Screen
}

// App is the central coordinator.
type App struct {
	opts    Options
	cfg     config.Config
	logger  *log.Logger
	logFile *os.File

	bus  *event.Bus
	eng  *engine.Engine
	keys *keymap.Map
	disp *dispatcher.Dispatcher
	lua  *luahost.Host

	screen tcell.Screen
	rend   *renderer.Renderer

	filePath string
	dirty    bool
	quit     bool
}

// New creates an application and initializes every component except
// the screen, which Run owns.
func New(opts Options) (*App, error) {
	a := &App{opts: opts}

	cfg, err := loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	if err := a.openLog(); err != nil {
		return nil, err
	}

	a.bus = event.NewBus()
	a.eng = engine.New(
		engine.WithConfig(a.cfg.Editor),
		engine.WithBus(a.bus),
	)

	a.keys = keymap.Default()
	keymapPath := a.cfg.Keymap.Path
	if opts.KeymapPath != "" {
		keymapPath = opts.KeymapPath
	}
	if keymapPath != "" {
		if err := a.keys.MergeFile(keymapPath); err != nil {
			a.logger.Warn("keymap %s: %v", keymapPath, err)
		}
	}

	a.disp = dispatcher.New(a.logger)
	a.disp.Register(dispatcher.NewEditorHandler(a.eng))
	a.disp.Register(dispatcher.NewCursorHandler(a.eng))
	a.disp.Register(&dispatcher.AppHandler{
		Save: a.Save,
		Quit: a.requestQuit,
	})

	a.lua = luahost.New(a.eng, a.keys, a.disp.Dispatch, a.logger)
	if opts.InitScript != "" {
		a.lua.LoadFile(opts.InitScript)
	}

	a.bus.Subscribe(event.TopicBufferChanged, func(ev event.Event) {
		a.dirty = true
		if payload, ok := ev.Payload.(engine.BufferChanged); ok {
			a.lua.NotifyChange(uint64(payload.Revision))
		}
	})

	if opts.File != "" {
		if err := a.Open(opts.File); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// openLog configures the logger from options and config. The screen
// owns stderr, so logging goes to a file when one is named.
func (a *App) openLog() error {
	level := log.ParseLevel(a.cfg.Log.Level)
	path := a.cfg.Log.File
	if a.opts.LogPath != "" {
		path = a.opts.LogPath
	}
	if path == "" {
		a.logger = log.Discard
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	a.logFile = f
	a.logger = log.New(f, level)
	return nil
}

// Engine exposes the engine for tests.
func (a *App) Engine() *engine.Engine {
	return a.eng
}

// Keymap exposes the keymap for tests.
func (a *App) Keymap() *keymap.Map {
	return a.keys
}

// Dispatcher exposes the dispatcher for tests.
func (a *App) Dispatcher() *dispatcher.Dispatcher {
	return a.disp
}

// Dirty reports unsaved changes.
func (a *App) Dirty() bool {
	return a.dirty
}

func (a *App) requestQuit() {
	a.quit = true
	a.bus.Publish(event.TopicAppQuit, nil)
}

// Close releases everything New created.
func (a *App) Close() {
	if a.lua != nil {
		a.lua.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// applyConfig swaps a freshly loaded snapshot into the running
// components.
func (a *App) applyConfig(cfg config.Config) {
	a.cfg = cfg
	a.eng.SetConfig(cfg.Editor)
	a.logger.SetLevel(log.ParseLevel(cfg.Log.Level))
	a.bus.Publish(event.TopicConfigReloaded, cfg)
	a.logger.Info("configuration reloaded")
}
