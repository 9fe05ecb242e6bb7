package ring

import "math"

// CursorSource is anything a Cursor can iterate over: a container exposing
// its current size, plus chronological-index access. History[T] implements
// this directly; idring.Ring adapts itself to CursorSource[uint64] so that
// the same Cursor algebra serves both subsystems, per the shared iterator
// abstraction described by the spec this package implements.
type CursorSource[T any] interface {
	Size() int
	AtIndex(index int) (T, bool)
}

// Cursor is a random-access iterator over any CursorSource. It is a small
// value type: a (source, index) pair.
//
// The zero value is the "cleared" cursor: no source reference, permanently
// invalid, and irrecoverable (decrementing or incrementing it is a no-op).
// A cursor with a source but an index at or beyond Size() is "past-the-end":
// invalid to dereference, but recoverable by decrementing — End() is exactly
// such a cursor.
type Cursor[T any] struct {
	src   CursorSource[T]
	index uint
}

// Begin returns a cursor to the oldest element of src (index 0).
func Begin[T any](src CursorSource[T]) Cursor[T] {
	return Cursor[T]{src: src}
}

// End returns the past-the-end cursor for src: invalid to dereference, but
// not cleared, so decrementing it once yields a valid cursor to the last
// element when src is non-empty.
func End[T any](src CursorSource[T]) Cursor[T] {
	return Cursor[T]{src: src, index: uint(src.Size())}
}

// IsCleared reports whether this cursor has no source reference at all —
// a permanent, irrecoverable invalid state.
func (c Cursor[T]) IsCleared() bool {
	return c.src == nil
}

// IsPastTheEnd reports whether this cursor has a source but its index is at
// or beyond the source's current size.
func (c Cursor[T]) IsPastTheEnd() bool {
	return c.src != nil && c.index >= uint(c.src.Size())
}

// Valid reports whether the cursor may be safely dereferenced right now.
func (c Cursor[T]) Valid() bool {
	return c.src != nil && c.index < uint(c.src.Size())
}

// Index returns the chronological index stored by this cursor. It may
// exceed the source's current size (a past-the-end cursor); calling Index
// on a cleared cursor returns 0.
func (c Cursor[T]) Index() int {
	return int(c.index)
}

// AsConst returns a snapshot of this cursor. Go has no const-qualified
// method overloading, so unlike the C++ original this is simply an identity
// conversion — provided so callers porting iterator-protocol code have a
// direct equivalent of as_const().
func (c Cursor[T]) AsConst() Cursor[T] {
	return c
}

// Equal implements the cursor equality law: any two invalid cursors (cleared
// and/or past-the-end, in any combination) compare equal to each other;
// otherwise two cursors are equal iff both are valid and share an index.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	cv, ov := c.Valid(), other.Valid()
	if !cv && !ov {
		return true
	}
	if cv != ov {
		return false
	}
	return c.index == other.index
}

// AddAssign advances the cursor by n (prefix += n). n may be negative, in
// which case it reduces to SubAssign(-n). A no-op on a cleared cursor. May
// move the cursor past-the-end, which is permitted.
func (c *Cursor[T]) AddAssign(n int) {
	if n < 0 {
		c.SubAssign(-n)
		return
	}
	if c.IsCleared() {
		return
	}
	c.index += uint(n)
}

// SubAssign moves the cursor back by n (prefix -= n). n may be negative, in
// which case it reduces to AddAssign(-n). A no-op on a cleared cursor. If n
// exceeds the current index, the cursor becomes cleared — irrecoverably, as
// moving before the beginning cannot be undone.
func (c *Cursor[T]) SubAssign(n int) {
	if n < 0 {
		c.AddAssign(-n)
		return
	}
	if c.IsCleared() {
		return
	}
	un := uint(n)
	if un > c.index {
		*c = Cursor[T]{}
		return
	}
	c.index -= un
}

// Inc is the prefix ++ equivalent: advances by one in place and returns the
// cursor for chaining.
func (c *Cursor[T]) Inc() *Cursor[T] {
	c.AddAssign(1)
	return c
}

// Dec is the prefix -- equivalent: moves back by one in place (clearing if
// already at the beginning) and returns the cursor for chaining.
func (c *Cursor[T]) Dec() *Cursor[T] {
	c.SubAssign(1)
	return c
}

// Add returns a copy of c advanced by n, i.e. the "c + n" expression.
func (c Cursor[T]) Add(n int) Cursor[T] {
	out := c
	out.AddAssign(n)
	return out
}

// Sub returns a copy of c moved back by n, i.e. the "c - n" expression.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	out := c
	out.SubAssign(n)
	return out
}

// Next returns c advanced by one, without mutating c — a non-mutating
// postfix-++-like helper: old, new := c, ring.Next(c).
func Next[T any](c Cursor[T]) Cursor[T] {
	return c.Add(1)
}

// Prev returns c moved back by one, without mutating c.
func Prev[T any](c Cursor[T]) Cursor[T] {
	return c.Sub(1)
}

// Diff computes the signed distance c - other.
//
// If both cursors are cleared, the distance is 0. If exactly one is
// cleared, ErrLogicError is returned — there is no meaningful distance
// between a permanently-invalid cursor and any other. Otherwise the result
// is the difference between the two indices; ErrOutOfRange is returned if
// either index cannot be represented as a signed int (mirrors the original
// ptrdiff_t overflow check, preserved here even though it is unreachable on
// any platform short of an index near the top of the int range).
func (c Cursor[T]) Diff(other Cursor[T]) (int, error) {
	cCleared, oCleared := c.IsCleared(), other.IsCleared()
	if cCleared && oCleared {
		return 0, nil
	}
	if cCleared || oCleared {
		return 0, ErrLogicError
	}
	if c.index > math.MaxInt || other.index > math.MaxInt {
		return 0, ErrOutOfRange
	}
	return int(c.index) - int(other.index), nil
}

// TryDeref dereferences the cursor, returning the zero value and false if
// the cursor is not currently valid.
func (c Cursor[T]) TryDeref() (T, bool) {
	if !c.Valid() {
		var zero T
		return zero, false
	}
	return c.src.AtIndex(int(c.index))
}

// Deref dereferences the cursor, returning ErrOutOfRange if it is not
// currently valid.
func (c Cursor[T]) Deref() (T, error) {
	v, ok := c.TryDeref()
	if !ok {
		return v, ErrOutOfRange
	}
	return v, nil
}
