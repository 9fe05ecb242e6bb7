package ring

// Core is the index bookkeeping for a bounded circular buffer. It owns no
// storage of its own: callers (History, idring.Ring) keep the backing array
// and use Core purely to translate between slot, index and age coordinates.
//
// The zero value is not usable; construct with NewCore.
type Core struct {
	capacity int
	// latestSlot is the slot of the most recently pushed element. Only
	// meaningful while length > 0.
	latestSlot int
	// length is the number of live elements, 0 <= length <= capacity.
	length int
}

// NewCore constructs a Core with the given fixed capacity. Panics if
// capacity < 1 — capacity is a construction-time invariant enforced by the
// owning type's exported constructor (History, idring.Ring), which is
// expected to have already validated it and returned a typed error instead.
func NewCore(capacity int) Core {
	if capacity < 1 {
		panic(`ring: capacity must be >= 1`)
	}
	return Core{capacity: capacity}
}

// Capacity returns the fixed capacity this Core was constructed with.
func (c *Core) Capacity() int { return c.capacity }

// Len returns the number of live elements.
func (c *Core) Len() int { return c.length }

// Empty reports whether there are no live elements.
func (c *Core) Empty() bool { return c.length == 0 }

// Full reports whether the live window has reached capacity.
func (c *Core) Full() bool { return c.length == c.capacity }

// Clear empties the ring. After Clear, Len() == 0.
func (c *Core) Clear() {
	c.latestSlot = 0
	c.length = 0
}

// frontSlot returns the slot of the oldest live element. Only valid to call
// when length > 0 — callers must check Empty first.
func (c *Core) frontSlot() int {
	// adding capacity before subtracting avoids underflow on the way to mod
	return (c.latestSlot + c.capacity - c.length + 1) % c.capacity
}

// PushBackSlot advances the ring by one element and returns the slot the
// caller should write the new value to. When the ring is already full, this
// overwrites the former front slot, as the oldest live element falls out of
// the window.
func (c *Core) PushBackSlot() int {
	c.latestSlot = (c.latestSlot + 1) % c.capacity
	if c.length < c.capacity {
		c.length++
	}
	return c.latestSlot
}

// PopFront logically removes the oldest live element, if any. The slot
// itself is left untouched in the backing array — it simply falls out of
// the [front, back] window.
func (c *Core) PopFront() {
	if c.length > 0 {
		c.length--
	}
}

// PopBack logically removes the newest live element, if any, returning
// whether there was anything to pop.
func (c *Core) PopBack() bool {
	if c.length == 0 {
		return false
	}
	c.latestSlot = (c.latestSlot + c.capacity - 1) % c.capacity
	c.length--
	return true
}

// FrontSlot returns the slot of the oldest live element, and whether the
// ring is non-empty. When empty, the returned slot is Capacity() — never a
// valid slot value.
func (c *Core) FrontSlot() (slot int, ok bool) {
	if c.length == 0 {
		return c.capacity, false
	}
	return c.frontSlot(), true
}

// BackSlot returns the slot of the newest live element, and whether the
// ring is non-empty. When empty, the returned slot is Capacity().
func (c *Core) BackSlot() (slot int, ok bool) {
	if c.length == 0 {
		return c.capacity, false
	}
	return c.latestSlot, true
}

// SlotForAge translates a reverse-chronological age (0 = newest) to a slot.
// Fails when the ring is empty or age is out of [0, Len()).
func (c *Core) SlotForAge(age int) (slot int, ok bool) {
	if c.length == 0 || age < 0 || age >= c.length {
		return 0, false
	}
	// latestSlot + capacity avoids underflow before subtracting age
	return (c.latestSlot + c.capacity - age) % c.capacity, true
}

// SlotForClampedAge is like SlotForAge, but an age >= Len() is clamped to
// Len()-1 instead of failing. Still fails iff the ring is empty.
func (c *Core) SlotForClampedAge(age int) (slot int, ok bool) {
	if c.length == 0 {
		return 0, false
	}
	if age >= c.length {
		age = c.length - 1
	}
	if age < 0 {
		age = 0
	}
	return c.SlotForAge(age)
}

// SlotForIndex translates a chronological index (0 = oldest) to a slot.
// Fails when the ring is empty or index is out of [0, Len()).
func (c *Core) SlotForIndex(index int) (slot int, ok bool) {
	if c.length == 0 || index < 0 || index >= c.length {
		return 0, false
	}
	return (c.frontSlot() + index) % c.capacity, true
}
