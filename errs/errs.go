// Package errs defines the error taxonomy shared by the intersect and
// quadtree packages.
//
// Errors are plain sentinel values so callers can use errors.Is against a
// stable kind without depending on message text. Call sites wrap a sentinel
// with additional detail via fmt.Errorf("%w: ...", errs.ErrInvalidArgument).
package errs

import "errors"

var (
	// ErrNullArgument indicates a required input was absent (a nil slice,
	// nil pointer, or similar) where the contract requires one.
	ErrNullArgument = errors.New("errs: required argument is nil")

	// ErrInvalidArgument indicates a value was supplied but is out of
	// domain — a negative epsilon, a degenerate segment, a key outside a
	// quadtree's bounds, a location tag outside {START, BETWEEN, END}, or a
	// node handle belonging to a different tree.
	ErrInvalidArgument = errors.New("errs: argument out of domain")

	// ErrNotFound indicates a requested key does not exist, e.g. move with
	// an unknown source key.
	ErrNotFound = errors.New("errs: key not found")

	// ErrIndexOutOfRange indicates grid coordinates outside their level.
	ErrIndexOutOfRange = errors.New("errs: index out of range")

	// ErrInvalidState indicates an internal consistency violation was
	// detected (sweep-line structure corruption). The sweep-line algorithm
	// as specified should never raise this in practice; it exists as a
	// defensive check rather than a reachable condition.
	ErrInvalidState = errors.New("errs: internal state inconsistent")

	// ErrOverflow indicates a numeric result exceeded the representable
	// range. No function in this module returns it: MaxLevel keeps
	// quadtree grid coordinates within their signature fields.
	ErrOverflow = errors.New("errs: numeric overflow")
)
