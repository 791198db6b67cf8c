package tween

import "fmt"

// ErrorKind classifies a programmer-error raised by the fluent builder
// surface. Every kind documented here is a misuse detected at the
// misuse site; none of them are raised by Advance, which never fails
// (a missing equation, path, or accessor degrades silently instead, per
// the fire-and-forget contract described on Tween.Ease).
type ErrorKind int

const (
	// ErrInvalidDuration is raised when a factory is given a negative
	// duration.
	ErrInvalidDuration ErrorKind = iota
	// ErrCombinedAttrsOverflow is raised when a tween declares more
	// components than CombinedAttrsLimit allows.
	ErrCombinedAttrsOverflow
	// ErrWaypointsOverflow is raised when a tween is given more waypoints
	// than WaypointsLimit allows.
	ErrWaypointsOverflow
	// ErrNoAccessor is raised by Build when no accessor can be resolved
	// for a tween's target.
	ErrNoAccessor
	// ErrMutateAfterStart is raised when a builder setter is called on a
	// tween or timeline that has already been started.
	ErrMutateAfterStart
	// ErrBadNesting is raised when End is called on a timeline builder
	// with no open Begin.
	ErrBadNesting
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidDuration:
		return "invalid duration"
	case ErrCombinedAttrsOverflow:
		return "combined attributes overflow"
	case ErrWaypointsOverflow:
		return "waypoints overflow"
	case ErrNoAccessor:
		return "no accessor registered for target"
	case ErrMutateAfterStart:
		return "mutated after start"
	case ErrBadNesting:
		return "unbalanced sequence/parallel nesting"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// Error is the single failure type used for every programmer-error this
// package raises. It is always a bug in the caller's usage, never a
// transient runtime condition, so there is nothing to recover from beyond
// fixing the call site.
type Error struct {
	Kind ErrorKind
	// Detail adds context specific to the call site, e.g. the offending
	// value or the target's type name.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "tween: " + e.Kind.String()
	}
	return "tween: " + e.Kind.String() + ": " + e.Detail
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
