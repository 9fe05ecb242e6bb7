package ring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_EmptyFrontBackFail(t *testing.T) {
	h := NewHistory[int](4)

	_, err := h.Front()
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = h.Back()
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	assert.True(t, h.Empty())
	assert.False(t, h.Full())
	assert.Equal(t, 0, h.Size())
}

func TestHistory_Rotation(t *testing.T) {
	// capacity 4, push 10,20,30,40,50 -> 20,30,40,50 survive
	h := NewHistory[int](4)
	for _, v := range []int{10, 20, 30, 40, 50} {
		h.PushBack(v)
	}

	require.Equal(t, 4, h.Size())
	require.True(t, h.Full())

	back, err := h.Back()
	require.NoError(t, err)
	assert.Equal(t, 50, back)

	front, err := h.Front()
	require.NoError(t, err)
	assert.Equal(t, 20, front)

	v, ok := h.GetAtIndex(0)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = h.GetAtIndex(2)
	require.True(t, ok)
	assert.Equal(t, 40, v)

	v, ok = h.GetAtAge(0)
	require.True(t, ok)
	assert.Equal(t, 50, v)
}

func TestHistory_CursorScenario(t *testing.T) {
	// mirrors the capacity-4/5-pushes cursor scenario: end()-begin()==4,
	// *(begin()+2)==40, --end() dereferences to 50.
	h := NewHistory[int](4)
	for _, v := range []int{10, 20, 30, 40, 50} {
		h.PushBack(v)
	}

	begin := h.Begin()
	end := h.End()

	diff, err := end.Diff(begin)
	require.NoError(t, err)
	assert.Equal(t, 4, diff)

	mid := begin.Add(2)
	v, err := mid.Deref()
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	last := end
	last.Dec()
	v, err = last.Deref()
	require.NoError(t, err)
	assert.Equal(t, 50, v)
}

func TestHistory_PopFrontAndBack(t *testing.T) {
	h := NewHistory[int](3)
	for _, v := range []int{1, 2, 3} {
		h.PushBack(v)
	}

	h.PopFront()
	assert.Equal(t, 2, h.Size())
	front, err := h.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, front)

	ok := h.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 1, h.Size())
	back, err := h.Back()
	require.NoError(t, err)
	assert.Equal(t, 2, back)

	ok = h.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 0, h.Size())

	ok = h.PopBack()
	assert.False(t, ok)
}

func TestHistory_ClampedAge(t *testing.T) {
	h := NewHistory[int](4)
	for _, v := range []int{1, 2, 3} {
		h.PushBack(v)
	}

	v, ok := h.GetAtClampedAge(100)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory[string](4)
	h.PushBack("a")
	h.PushBack("b")
	h.Clear()

	assert.True(t, h.Empty())
	_, err := h.Front()
	assert.ErrorIs(t, err, ErrEmptyBuffer)
	assert.True(t, errors.Is(err, ErrEmptyBuffer))
}

func TestHistory_CursorIterationOrder(t *testing.T) {
	h := NewHistory[int](5)
	for i := 0; i < 5; i++ {
		h.PushBack(i * 10)
	}

	var got []int
	for c := h.Begin(); !c.Equal(h.End()); c.Inc() {
		v, err := c.Deref()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 10, 20, 30, 40}, got)
}
