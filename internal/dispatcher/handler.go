package dispatcher

import (
	"fmt"

	"github.com/dshills/markstorm/internal/input"
)

// Status indicates the outcome of dispatching an action.
type Status uint8

const (
	// StatusHandled indicates the action was executed.
	StatusHandled Status = iota
	// StatusIgnored indicates no handler claimed the action.
	StatusIgnored
	// StatusError indicates a handler failed.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusIgnored:
		return "ignored"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one dispatched action.
type Result struct {
	Status Status
	Err    error
}

// Handled returns a successful result.
func Handled() Result {
	return Result{Status: StatusHandled}
}

// Ignored returns a result for an unclaimed action.
func Ignored() Result {
	return Result{Status: StatusIgnored}
}

// Fail returns an error result.
func Fail(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Failf returns a formatted error result.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Errorf(format, args...))
}

// Handler processes the actions of one namespace.
type Handler interface {
	// Namespace returns the action prefix this handler owns, e.g.
	// "editor".
	Namespace() string

	// CanHandle returns true if this handler processes the action.
	CanHandle(name string) bool

	// Handle executes the action.
	Handle(action input.Action) Result
}
