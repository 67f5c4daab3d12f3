package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/config/watcher"
	"github.com/dshills/markstorm/internal/input"
	"github.com/dshills/markstorm/internal/renderer"
)

// Run owns the screen and the main loop: poll terminal events,
// translate them to key events, resolve the keymap, dispatch, redraw.
// It returns when the user quits or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	screen := a.opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer s.Fini()
		screen = s
	}
	a.screen = screen
	a.rend = renderer.New(screen)

	var reloads <-chan config.Config
	if a.opts.ConfigPath != "" {
		w, err := watcher.New(a.opts.ConfigPath,
			watcher.WithErrorHandler(func(err error) {
				a.logger.WithComponent("watcher").Error("%v", err)
			}))
		if err != nil {
			a.logger.Warn("config watcher: %v", err)
		} else {
			w.Start(ctx)
			reloads = w.Reloads()
		}
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.redraw()

	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cfg := <-reloads:
			a.applyConfig(cfg)
			a.redraw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
			a.redraw()
		}
	}
	return nil
}

// handleEvent processes one terminal event synchronously.
func (a *App) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(tev)
	}
}

// handleKey runs a key through the keymap; unbound printable
// characters type into the buffer with the pairing rules applied.
func (a *App) handleKey(tev *tcell.EventKey) {
	ev, ok := translateKey(tev)
	if !ok {
		return
	}

	if action := a.keys.Resolve(ev); action != "" {
		a.disp.Dispatch(input.Action{Name: action, Source: input.SourceKeyboard})
		return
	}

	if ev.IsChar() {
		if err := a.eng.TypeRune(ev.Rune); err != nil {
			a.logger.Error("typing %q: %v", ev.Rune, err)
		}
	}
}

// redraw repaints the screen from current state.
func (a *App) redraw() {
	a.rend.Draw(a.eng, renderer.State{
		FileName: a.filePath,
		Dirty:    a.dirty,
	})
}
