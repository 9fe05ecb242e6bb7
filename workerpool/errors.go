package workerpool

import (
	"errors"

	"github.com/joeycumines/go-taskring/ring"
)

// ErrInvalidArgument is re-exported from ring so callers of this package
// never need to import ring just to check an error with errors.Is.
var ErrInvalidArgument = ring.ErrInvalidArgument

// InvalidArgumentError is an alias of ring.InvalidArgumentError, returned by
// NewPool when construction parameters are rejected.
type InvalidArgumentError = ring.InvalidArgumentError

// ErrAllocationFailure names a failure to allocate worker resources during
// pool setup. No function in this package returns it: Go's sync primitives
// and goroutine creation cannot themselves fail to allocate, so NewPool has
// no such error path. It is declared as the counterpart of the original C
// API's allocation failure (which could fail to allocate its fixed-size
// thread array).
var ErrAllocationFailure = errors.New(`workerpool: allocation failure`)

// ErrClosed is returned by Group.Push if called after the owning Pool has
// been closed.
var ErrClosed = errors.New(`workerpool: pool is closed`)
