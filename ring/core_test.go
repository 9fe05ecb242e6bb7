package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCore_PanicsOnInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewCore(0) })
	assert.Panics(t, func() { NewCore(-1) })
}

func TestCore_EmptyTranslationsFail(t *testing.T) {
	c := NewCore(4)

	_, ok := c.FrontSlot()
	assert.False(t, ok)

	_, ok = c.BackSlot()
	assert.False(t, ok)

	_, ok = c.SlotForAge(0)
	assert.False(t, ok)

	_, ok = c.SlotForClampedAge(0)
	assert.False(t, ok)

	_, ok = c.SlotForIndex(0)
	assert.False(t, ok)

	assert.False(t, c.PopBack())
	c.PopFront() // no-op, must not panic
}

func TestCore_Rotation(t *testing.T) {
	// capacity 4, push 10,20,30,40,50 (slots only tracked, not values)
	c := NewCore(4)
	for i := 0; i < 5; i++ {
		c.PushBackSlot()
	}

	assert.Equal(t, 4, c.Len())

	back, ok := c.BackSlot()
	assert.True(t, ok)
	assert.Equal(t, 4, c.capacity)
	_ = back

	// age 0 is newest (the 5th push), age 3 is oldest surviving (the 2nd push)
	ageZero, ok := c.SlotForAge(0)
	assert.True(t, ok)
	ageThree, ok := c.SlotForAge(3)
	assert.True(t, ok)
	assert.NotEqual(t, ageZero, ageThree)

	_, ok = c.SlotForAge(4)
	assert.False(t, ok, "age == length must fail")
}

func TestCore_PopMix(t *testing.T) {
	c := NewCore(3)
	for i := 0; i < 3; i++ {
		c.PushBackSlot()
	}
	assert.Equal(t, 3, c.Len())

	c.PopFront()
	assert.Equal(t, 2, c.Len())

	assert.True(t, c.PopBack())
	assert.Equal(t, 1, c.Len())

	assert.True(t, c.PopBack())
	assert.Equal(t, 0, c.Len())

	assert.False(t, c.PopBack())
}

func TestCore_ClampedAge(t *testing.T) {
	c := NewCore(4)
	for i := 0; i < 3; i++ {
		c.PushBackSlot()
	}

	want, ok := c.SlotForAge(2) // oldest
	assert.True(t, ok)

	got, ok := c.SlotForClampedAge(100)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCore_Clear(t *testing.T) {
	c := NewCore(4)
	for i := 0; i < 4; i++ {
		c.PushBackSlot()
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Empty())
	_, ok := c.FrontSlot()
	assert.False(t, ok)
}

func TestCore_SlotForIndexMatchesAge(t *testing.T) {
	c := NewCore(5)
	for i := 0; i < 7; i++ {
		c.PushBackSlot()
	}
	n := c.Len()
	for age := 0; age < n; age++ {
		slotByAge, ok := c.SlotForAge(age)
		assert.True(t, ok)
		slotByIndex, ok := c.SlotForIndex(n - 1 - age)
		assert.True(t, ok)
		assert.Equal(t, slotByAge, slotByIndex)
	}
}
