package ring

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by History and Cursor operations and by the
// constructors. Callers should compare with errors.Is. History and Cursor
// return their errors unwrapped — the failing operation and its arguments
// are already known to the caller; ErrInvalidArgument is always returned
// wrapped in an InvalidArgumentError.
var (
	// ErrEmptyBuffer is returned by History.Front / History.Back when the
	// buffer has no live elements.
	ErrEmptyBuffer = errors.New(`ring: buffer is empty`)

	// ErrOutOfRange is returned by Cursor.Deref when the cursor is not
	// valid, and by Cursor.Diff when a cursor's index cannot be represented
	// as a signed int. Diff of past-the-end cursors is not an error.
	ErrOutOfRange = errors.New(`ring: cursor out of range`)

	// ErrLogicError is returned by Cursor.Diff when exactly one of the two
	// cursors being compared is cleared — there is no meaningful distance
	// between a permanently-invalid cursor and a non-cleared one.
	ErrLogicError = errors.New(`ring: cannot compare cleared and non-cleared cursors`)

	// ErrInvalidArgument is the sentinel InvalidArgumentError unwraps to.
	// Shared across packages (idring.NewRing, workerpool.NewPool) so callers
	// can use a single errors.Is check regardless of which constructor
	// rejected its arguments.
	ErrInvalidArgument = errors.New(`invalid argument`)
)

// InvalidArgumentError reports a rejected construction-time parameter. It
// names the offending field and the reason it was rejected, and unwraps to
// ErrInvalidArgument so callers can check with errors.Is without caring
// about the specific field.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf(`invalid argument %q: %s`, e.Field, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
