// Package idring implements a ring buffer keyed on uint64 ids: a bounded
// circular window over an append-only (within the window) id sequence, with
// binary and linear search over the live ids.
//
// It reuses the ring package's index bookkeeping and cursor algebra rather
// than duplicating them — Ring is, structurally, a ring.Core plus a
// parallel []uint64, adapted to ring.CursorSource[uint64] so the same
// iterator type serves both packages.
package idring
