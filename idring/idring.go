package idring

import (
	"sort"

	"github.com/joeycumines/go-taskring/ring"
)

// Ring is a bounded circular window over a sequence of uint64 ids, keeping
// a parallel, caller-ordered id per slot alongside the index bookkeeping in
// ring.Core. Pushing past capacity overwrites the oldest surviving id,
// exactly as ring.History does for values.
//
// LowerBound requires ids to have been pushed in non-decreasing order; it is
// undefined (returns a meaningless slot) otherwise. FindUnordered makes no
// such assumption.
//
// The zero value is not usable; construct with NewRing.
type Ring struct {
	core ring.Core
	ids  []uint64
}

// NewRing constructs a Ring with the given fixed capacity. Returns
// ring.InvalidArgumentError wrapping ring.ErrInvalidArgument if capacity < 1.
func NewRing(capacity int) (*Ring, error) {
	if capacity < 1 {
		return nil, &ring.InvalidArgumentError{
			Field:  `capacity`,
			Reason: `must be >= 1`,
		}
	}
	return &Ring{
		core: ring.NewCore(capacity),
		ids:  make([]uint64, capacity),
	}, nil
}

// Capacity returns the fixed capacity this Ring was constructed with.
func (r *Ring) Capacity() int { return r.core.Capacity() }

// Size returns the number of live ids. Implements ring.CursorSource.
func (r *Ring) Size() int { return r.core.Len() }

// Empty reports whether there are no live ids.
func (r *Ring) Empty() bool { return r.core.Empty() }

// Full reports whether the live window has reached capacity.
func (r *Ring) Full() bool { return r.core.Full() }

// PushBack appends id as the newest element, returning the slot it was
// written to. ok is always true — like ring.Core, Ring never refuses a
// push; it overwrites the oldest id once full. The (slot, ok) shape matches
// Ring's other slot-returning methods (LowerBound, FindUnordered) rather
// than dropping ok just because this particular operation can't fail, and
// the slot itself mirrors u_id_ringbuffer_push_back's inner-index return.
func (r *Ring) PushBack(id uint64) (slot int, ok bool) {
	slot = r.core.PushBackSlot()
	r.ids[slot] = id
	return slot, true
}

// PopFront removes the oldest id, if any. A no-op when already empty.
func (r *Ring) PopFront() {
	r.core.PopFront()
}

// PopBack removes the newest id, if any, returning whether there was one to
// remove.
func (r *Ring) PopBack() bool {
	return r.core.PopBack()
}

// Clear empties the ring.
func (r *Ring) Clear() {
	r.core.Clear()
}

// GetFront returns the oldest id, its slot, and whether the ring is
// non-empty.
func (r *Ring) GetFront() (id uint64, slot int, ok bool) {
	slot, ok = r.core.FrontSlot()
	if !ok {
		return 0, 0, false
	}
	return r.ids[slot], slot, true
}

// GetBack returns the newest id, its slot, and whether the ring is
// non-empty.
func (r *Ring) GetBack() (id uint64, slot int, ok bool) {
	slot, ok = r.core.BackSlot()
	if !ok {
		return 0, 0, false
	}
	return r.ids[slot], slot, true
}

// GetAtIndex returns the id at chronological index (0 = oldest), its slot,
// and whether index was in range. Implements ring.CursorSource via AtIndex.
func (r *Ring) GetAtIndex(index int) (id uint64, slot int, ok bool) {
	slot, ok = r.core.SlotForIndex(index)
	if !ok {
		return 0, 0, false
	}
	return r.ids[slot], slot, true
}

// AtIndex satisfies ring.CursorSource[uint64].
func (r *Ring) AtIndex(index int) (uint64, bool) {
	id, _, ok := r.GetAtIndex(index)
	return id, ok
}

// GetAtAge returns the id at reverse-chronological age (0 = newest), its
// slot, and whether age was in range.
func (r *Ring) GetAtAge(age int) (id uint64, slot int, ok bool) {
	slot, ok = r.core.SlotForAge(age)
	if !ok {
		return 0, 0, false
	}
	return r.ids[slot], slot, true
}

// GetAtClampedAge is like GetAtAge, but an age >= Size() is clamped to the
// oldest id instead of failing. Still fails iff the ring is empty.
func (r *Ring) GetAtClampedAge(age int) (id uint64, slot int, ok bool) {
	slot, ok = r.core.SlotForClampedAge(age)
	if !ok {
		return 0, 0, false
	}
	return r.ids[slot], slot, true
}

// LowerBound returns the slot and chronological index of the first live id
// >= searchID, assuming ids were pushed in non-decreasing order (the same
// precondition std::lower_bound places on its input range). ok is false if
// every live id is < searchID.
//
// Implemented with sort.Search over chronological index, the same
// binary-search-then-translate-to-slot idiom catrate's ringBuffer.Search
// uses over its own chronologically-ordered window.
func (r *Ring) LowerBound(searchID uint64) (slot int, chronoIndex int, ok bool) {
	n := r.core.Len()
	chronoIndex = sort.Search(n, func(i int) bool {
		s, _ := r.core.SlotForIndex(i)
		return r.ids[s] >= searchID
	})
	if chronoIndex >= n {
		return 0, 0, false
	}
	slot, _ = r.core.SlotForIndex(chronoIndex)
	return slot, chronoIndex, true
}

// FindUnordered scans every live id for an exact match, without assuming any
// ordering. Returns the slot and chronological index of the first match,
// oldest-first.
func (r *Ring) FindUnordered(searchID uint64) (slot int, chronoIndex int, ok bool) {
	n := r.core.Len()
	for i := 0; i < n; i++ {
		s, _ := r.core.SlotForIndex(i)
		if r.ids[s] == searchID {
			return s, i, true
		}
	}
	return 0, 0, false
}

// Begin returns a cursor to the oldest id.
func (r *Ring) Begin() ring.Cursor[uint64] { return ring.Begin[uint64](r) }

// End returns the past-the-end cursor.
func (r *Ring) End() ring.Cursor[uint64] { return ring.End[uint64](r) }
