// Package dispatcher routes named actions to their handlers. The app
// loop, the keymap, and the Lua host all speak in actions; the
// dispatcher is the single choke point where they become engine calls.
package dispatcher

import (
	"github.com/dshills/markstorm/internal/input"
	"github.com/dshills/markstorm/internal/log"
)

// Dispatcher routes actions to registered handlers.
type Dispatcher struct {
	handlers []Handler
	logger   *log.Logger
}

// New creates a dispatcher. A nil logger is replaced with log.Discard.
func New(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Discard
	}
	return &Dispatcher{logger: logger.WithComponent("dispatcher")}
}

// Register adds a handler. Handlers are consulted in registration
// order; the first CanHandle match wins.
func (d *Dispatcher) Register(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Dispatch routes one action and returns the result. Unclaimed actions
// and handler errors are logged, never propagated as panics: a bad
// binding must not take the editor down.
func (d *Dispatcher) Dispatch(action input.Action) Result {
	for _, h := range d.handlers {
		if !h.CanHandle(action.Name) {
			continue
		}
		res := h.Handle(action)
		if res.Status == StatusError {
			d.logger.Error("action %s failed: %v", action.Name, res.Err)
		}
		return res
	}
	d.logger.Warn("no handler for action %s (source %s)", action.Name, action.Source)
	return Ignored()
}
