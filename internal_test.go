package storagekit

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// The bounded containers promise that every live element is released exactly
// once and that vacant slots pin nothing. With pointer elements a released
// slot must read back as nil, so the backing slots are inspected directly
// after every mutation path.

func assertSlotDiscipline[T any](tb testing.TB, av *ArrayVec[*T]) {
	tb.Helper()
	for i := 0; i < av.length; i++ {
		assert.NotNil(tb, av.slots[i].Get(), "live slot must hold its element")
	}
	for i := av.length; i < len(av.slots); i++ {
		assert.Nil(tb, av.slots[i].Get(), "vacant slot must not pin a released element")
	}
}

func TestArrayVec_slotDiscipline(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	newElem := func() *int {
		n := rnd.Int()
		return &n
	}

	t.Run("pop vacates the slot it drained", func(t *testing.T) {
		av := NewArrayVec[*int](4)
		assert.NoError(t, av.Push(newElem()))
		assert.NoError(t, av.Push(newElem()))
		_, err := av.Pop()
		assert.NoError(t, err)
		assertSlotDiscipline(t, av)
	})

	t.Run("remove shifts without leaving a stale tail slot", func(t *testing.T) {
		av := NewArrayVec[*int](4)
		for i := 0; i < 4; i++ {
			assert.NoError(t, av.Push(newElem()))
		}
		_, err := av.Remove(rnd.IntN(4))
		assert.NoError(t, err)
		assertSlotDiscipline(t, av)
	})

	t.Run("remove of the last element", func(t *testing.T) {
		av := NewArrayVec[*int](4)
		assert.NoError(t, av.Push(newElem()))
		_, err := av.Remove(0)
		assert.NoError(t, err)
		assertSlotDiscipline(t, av)
	})

	t.Run("insert shifts between slots without duplicating ownership", func(t *testing.T) {
		av := NewArrayVec[*int](4)
		assert.NoError(t, av.Push(newElem()))
		assert.NoError(t, av.Push(newElem()))
		assert.NoError(t, av.Insert(1, newElem()))
		assertSlotDiscipline(t, av)
		vs := av.ToSlice()
		for i, v := range vs {
			for j, oth := range vs {
				if i != j {
					assert.False(t, v == oth, "shifting must move elements, not duplicate them")
				}
			}
		}
	})

	t.Run("set releases the overwritten element", func(t *testing.T) {
		av := NewArrayVec[*int](4)
		og := newElem()
		assert.NoError(t, av.Push(og))
		exp := newElem()
		assert.NoError(t, av.Set(0, exp))
		got, err := av.Get(0)
		assert.NoError(t, err)
		assert.True(t, got == exp)
		assertSlotDiscipline(t, av)
	})

	t.Run("clear releases exactly the live slots", func(t *testing.T) {
		av := NewArrayVec[*int](8)
		n := rnd.IntBetween(1, 8)
		for i := 0; i < n; i++ {
			assert.NoError(t, av.Push(newElem()))
		}
		av.Clear()
		assert.Equal(t, 0, av.Len())
		for i := range av.slots {
			assert.Nil(t, av.slots[i].Get())
		}
	})

	t.Run("a rejected push leaves the slots untouched", func(t *testing.T) {
		av := NewArrayVec[*int](1)
		assert.NoError(t, av.Push(newElem()))
		assert.ErrorIs(t, ErrCapacityExceeded, av.Push(newElem()))
		assertSlotDiscipline(t, av)
	})
}

func TestArrayMap_slotDiscipline(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	newElem := func() *int {
		n := rnd.Int()
		return &n
	}
	assertDiscipline := func(tb testing.TB, am *ArrayMap[string, *int]) {
		tb.Helper()
		for i := 0; i < am.length; i++ {
			assert.NotNil(tb, am.slots[i].Get().val, "live slot must hold its value")
		}
		for i := am.length; i < len(am.slots); i++ {
			entry := am.slots[i].Get()
			assert.Nil(tb, entry.val, "vacant slot must not pin a released value")
			assert.Empty(tb, entry.key, "vacant slot must not retain a key")
		}
	}

	t.Run("remove swaps the last entry into the gap and vacates the tail", func(t *testing.T) {
		am := NewArrayMap[string, *int](4)
		for _, k := range []string{"a", "b", "c", "d"} {
			_, _, err := am.Insert(k, newElem())
			assert.NoError(t, err)
		}
		_, err := am.Remove("b")
		assert.NoError(t, err)
		assert.Equal(t, 3, am.Len())
		assertDiscipline(t, am)
		assert.ContainsExactly(t, []string{"a", "c", "d"}, am.Keys())
	})

	t.Run("clear releases exactly the live slots", func(t *testing.T) {
		am := NewArrayMap[string, *int](8)
		n := rnd.IntBetween(1, 8)
		for i := 0; i < n; i++ {
			_, _, err := am.Insert(rnd.StringNC(8, random.CharsetAlpha()), newElem())
			assert.NoError(t, err)
		}
		am.Clear()
		assert.Equal(t, 0, am.Len())
		assertDiscipline(t, am)
	})

	t.Run("replacing a value hands back the previous one instead of dropping it", func(t *testing.T) {
		am := NewArrayMap[string, *int](2)
		og := newElem()
		_, _, err := am.Insert("k", og)
		assert.NoError(t, err)
		prev, replaced, err := am.Insert("k", newElem())
		assert.NoError(t, err)
		assert.True(t, replaced)
		assert.True(t, prev == og)
		assertDiscipline(t, am)
	})
}

func TestSmallVec_spillReleasesTheInlineSlots(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	sv := NewSmallVec[*int](2)
	for i := 0; i < 3; i++ {
		n := rnd.Int()
		assert.NoError(t, sv.Push(&n))
	}
	assert.True(t, sv.spilled())
	for i := range sv.inline.slots {
		assert.Nil(t, sv.inline.slots[i].Get(), "spilled elements must not stay pinned inline")
	}
	assert.Equal(t, 0, sv.inline.Len())
	assert.Equal(t, 3, sv.Len())
}
