package ring

// History is a fixed-capacity value history: a circular buffer of the N
// most recently pushed values of T. Pushing past capacity silently
// overwrites the oldest surviving value — History never grows.
//
// The zero value is not usable; construct with NewHistory.
type History[T any] struct {
	core    Core
	storage []T
}

// NewHistory constructs a History with the given fixed capacity. Panics if
// capacity < 1, mirroring Core's own construction-time invariant.
func NewHistory[T any](capacity int) *History[T] {
	return &History[T]{
		core:    NewCore(capacity),
		storage: make([]T, capacity),
	}
}

// Capacity returns the fixed capacity this History was constructed with.
func (h *History[T]) Capacity() int { return h.core.Capacity() }

// Size returns the number of live elements. Implements CursorSource.
func (h *History[T]) Size() int { return h.core.Len() }

// Empty reports whether there are no live elements.
func (h *History[T]) Empty() bool { return h.core.Empty() }

// Full reports whether the live window has reached capacity.
func (h *History[T]) Full() bool { return h.core.Full() }

// PushBack appends value as the newest element, overwriting the oldest
// element once the buffer is full.
func (h *History[T]) PushBack(value T) {
	slot := h.core.PushBackSlot()
	h.storage[slot] = value
}

// PopBack removes the newest element, if any, returning whether there was
// one to remove. The vacated storage slot is left at its former value; it
// will be overwritten by a subsequent PushBack.
func (h *History[T]) PopBack() bool {
	return h.core.PopBack()
}

// PopFront removes the oldest element, if any. A no-op when already empty.
func (h *History[T]) PopFront() {
	h.core.PopFront()
}

// Clear empties the history. Previously pushed values remain in backing
// storage until overwritten, but are no longer reachable through History.
func (h *History[T]) Clear() {
	h.core.Clear()
}

// GetAtIndex returns the element at chronological index (0 = oldest).
// Implements CursorSource via AtIndex.
func (h *History[T]) GetAtIndex(index int) (T, bool) {
	slot, ok := h.core.SlotForIndex(index)
	if !ok {
		var zero T
		return zero, false
	}
	return h.storage[slot], true
}

// AtIndex is an alias for GetAtIndex, satisfying CursorSource[T].
func (h *History[T]) AtIndex(index int) (T, bool) {
	return h.GetAtIndex(index)
}

// GetAtAge returns the element at reverse-chronological age (0 = newest).
func (h *History[T]) GetAtAge(age int) (T, bool) {
	slot, ok := h.core.SlotForAge(age)
	if !ok {
		var zero T
		return zero, false
	}
	return h.storage[slot], true
}

// GetAtClampedAge is like GetAtAge, but an age >= Size() is clamped to the
// oldest element instead of failing. Still fails iff the history is empty.
func (h *History[T]) GetAtClampedAge(age int) (T, bool) {
	slot, ok := h.core.SlotForClampedAge(age)
	if !ok {
		var zero T
		return zero, false
	}
	return h.storage[slot], true
}

// Front returns the oldest element, or ErrEmptyBuffer if the history is
// empty.
func (h *History[T]) Front() (T, error) {
	slot, ok := h.core.FrontSlot()
	if !ok {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return h.storage[slot], nil
}

// Back returns the newest element, or ErrEmptyBuffer if the history is
// empty.
func (h *History[T]) Back() (T, error) {
	slot, ok := h.core.BackSlot()
	if !ok {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return h.storage[slot], nil
}

// Begin returns a cursor to the oldest element.
func (h *History[T]) Begin() Cursor[T] { return Begin[T](h) }

// End returns the past-the-end cursor.
func (h *History[T]) End() Cursor[T] { return End[T](h) }

// CBegin is an alias for Begin, provided for callers porting code written
// against the const-iterator pair (cbegin/cend).
func (h *History[T]) CBegin() Cursor[T] { return h.Begin() }

// CEnd is an alias for End, provided for the same reason.
func (h *History[T]) CEnd() Cursor[T] { return h.End() }
