// Package storagekitcontract contains the behaviour contracts that every
// storagekit Sequence and Mapping implementation must pass, regardless of
// its backing storage strategy.
package storagekitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/storagekit"
)

// contractCapacity is the construction capacity used by the contract runs.
// Bounded subjects must honour it as a hard bound; the tests never push more
// than contractCapacity elements outside the dedicated capacity coverage.
const contractCapacity = 8

// Sequence returns the behaviour contract of storagekit.Sequence.
//
// The subject constructor receives the capacity to construct with.
// When the constructed subject implements storagekit.Capper, the contract
// also covers the bounded capacity behaviour.
func Sequence[T any](
	subject func(tb testing.TB, capacity int) storagekit.Sequence[T],
	makeV func(tb testing.TB) T,
) testcase.Suite {
	s := testcase.NewSpec(nil)

	seq := let.Var(s, func(t *testcase.T) storagekit.Sequence[T] {
		return subject(t, contractCapacity)
	})

	s.Test("a new sequence is empty", func(t *testcase.T) {
		assert.True(t, seq.Get(t).IsEmpty())
		assert.Equal(t, 0, seq.Get(t).Len())
	})

	s.Test("push appends and grows the length by exactly one", func(t *testcase.T) {
		sub := seq.Get(t)
		t.Random.Repeat(1, contractCapacity, func() {
			v := makeV(t)
			prevLen := sub.Len()
			assert.NoError(t, sub.Push(v))
			assert.Equal(t, prevLen+1, sub.Len())
			got, err := sub.Get(sub.Len() - 1)
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		})
		assert.False(t, seq.Get(t).IsEmpty())
	})

	s.Test("pop after push returns the pushed value and restores the length", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.NoError(t, sub.Push(makeV(t)))
		prevLen := sub.Len()
		v := makeV(t)
		assert.NoError(t, sub.Push(v))
		got, err := sub.Pop()
		assert.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, prevLen, sub.Len())
	})

	s.Test("pop on an empty sequence reports that it is empty", func(t *testcase.T) {
		_, err := seq.Get(t).Pop()
		assert.ErrorIs(t, storagekit.ErrEmpty, err)
	})

	s.Test("get and at reject indexes at or past the length", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.NoError(t, sub.Push(makeV(t)))
		_, err := sub.Get(sub.Len())
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, err)
		_, err = sub.Get(-1)
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, err)
		_, err = sub.At(sub.Len())
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, err)
	})

	s.Test("at yields a pointer that mutates the element in place", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.NoError(t, sub.Push(makeV(t)))
		exp := makeV(t)
		ptr, err := sub.At(0)
		assert.NoError(t, err)
		assert.NotNil(t, ptr)
		*ptr = exp
		got, err := sub.Get(0)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("set replaces the element at the index", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.NoError(t, sub.Push(makeV(t)))
		assert.NoError(t, sub.Push(makeV(t)))
		exp := makeV(t)
		assert.NoError(t, sub.Set(1, exp))
		got, err := sub.Get(1)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, sub.Set(sub.Len(), exp))
	})

	s.Test("insert shifts the elements at and after the index toward the end", func(t *testcase.T) {
		sub := seq.Get(t)
		first, second, inserted := makeV(t), makeV(t), makeV(t)
		assert.NoError(t, sub.Push(first))
		assert.NoError(t, sub.Push(second))
		assert.NoError(t, sub.Insert(1, inserted))
		assert.Equal(t, []T{first, inserted, second}, sub.ToSlice())
	})

	s.Test("insert at the length index appends", func(t *testcase.T) {
		sub := seq.Get(t)
		v := makeV(t)
		assert.NoError(t, sub.Insert(sub.Len(), v))
		got, err := sub.Get(sub.Len() - 1)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	})

	s.Test("insert past the length is out of bounds", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, sub.Insert(sub.Len()+1, makeV(t)))
	})

	s.Test("remove shifts the later elements toward the start", func(t *testcase.T) {
		sub := seq.Get(t)
		first, second, third := makeV(t), makeV(t), makeV(t)
		assert.NoError(t, sub.Push(first))
		assert.NoError(t, sub.Push(second))
		assert.NoError(t, sub.Push(third))
		got, err := sub.Remove(1)
		assert.NoError(t, err)
		assert.Equal(t, second, got)
		assert.Equal(t, []T{first, third}, sub.ToSlice())
	})

	s.Test("remove accepts the last index", func(t *testcase.T) {
		sub := seq.Get(t)
		v := makeV(t)
		assert.NoError(t, sub.Push(v))
		got, err := sub.Remove(sub.Len() - 1)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
		assert.True(t, sub.IsEmpty())
	})

	s.Test("remove past the length is out of bounds", func(t *testcase.T) {
		sub := seq.Get(t)
		_, err := sub.Remove(sub.Len())
		assert.ErrorIs(t, storagekit.ErrOutOfBounds, err)
	})

	s.Test("clear empties the sequence", func(t *testcase.T) {
		sub := seq.Get(t)
		t.Random.Repeat(1, contractCapacity, func() {
			assert.NoError(t, sub.Push(makeV(t)))
		})
		sub.Clear()
		assert.True(t, sub.IsEmpty())
		assert.Equal(t, 0, sub.Len())
		assert.NoError(t, sub.Push(makeV(t)), "a cleared sequence accepts new elements")
	})

	s.Test("iteration is ordered, restartable and matches ToSlice", func(t *testcase.T) {
		sub := seq.Get(t)
		exp := random.Slice(t.Random.IntBetween(1, contractCapacity), func() T { return makeV(t) })
		for _, v := range exp {
			assert.NoError(t, sub.Push(v))
		}
		var once []T
		for v := range sub.Iter() {
			once = append(once, v)
		}
		var again []T
		for v := range sub.Iter() {
			again = append(again, v)
		}
		assert.Equal(t, exp, once)
		assert.Equal(t, exp, again)
		assert.Equal(t, exp, sub.ToSlice())
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		sub := seq.Get(t)
		assert.NoError(t, sub.Push(makeV(t)))
		assert.NoError(t, sub.Push(makeV(t)))
		var n int
		for range sub.Iter() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Test("extend pushes every yielded value", func(t *testcase.T) {
		sub := seq.Get(t)
		exp := random.Slice(t.Random.IntBetween(1, contractCapacity), func() T { return makeV(t) })
		other := subject(t, contractCapacity)
		for _, v := range exp {
			assert.NoError(t, other.Push(v))
		}
		assert.NoError(t, sub.Extend(other.Iter()))
		assert.Equal(t, exp, sub.ToSlice())
	})

	s.Context("when the sequence is bounded", func(s *testcase.Spec) {
		capacity := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, contractCapacity)
		})
		bounded := let.Var(s, func(t *testcase.T) storagekit.Sequence[T] {
			sub := subject(t, capacity.Get(t))
			if _, ok := sub.(storagekit.Capper); !ok {
				t.Skip("unbounded sequence implementation")
			}
			return sub
		})

		s.Test("capacity many pushes succeed and the next one is rejected", func(t *testcase.T) {
			sub := bounded.Get(t)
			for i := 0; i < capacity.Get(t); i++ {
				assert.NoError(t, sub.Push(makeV(t)))
			}
			assert.Equal(t, capacity.Get(t), sub.Len())
			assert.ErrorIs(t, storagekit.ErrCapacityExceeded, sub.Push(makeV(t)))
			assert.Equal(t, capacity.Get(t), sub.Len(), "a rejected push must not mutate")
		})

		s.Test("insert on a full sequence is rejected", func(t *testcase.T) {
			sub := bounded.Get(t)
			for i := 0; i < capacity.Get(t); i++ {
				assert.NoError(t, sub.Push(makeV(t)))
			}
			assert.ErrorIs(t, storagekit.ErrCapacityExceeded, sub.Insert(0, makeV(t)))
		})

		s.Test("removal makes room for a further push", func(t *testcase.T) {
			sub := bounded.Get(t)
			for i := 0; i < capacity.Get(t); i++ {
				assert.NoError(t, sub.Push(makeV(t)))
			}
			_, err := sub.Remove(0)
			assert.NoError(t, err)
			assert.NoError(t, sub.Push(makeV(t)))
		})
	})

	return s.AsSuite("Sequence")
}

// Mapping returns the behaviour contract of storagekit.Mapping.
//
// The subject constructor receives the capacity to construct with.
// When the constructed subject implements storagekit.Capper, the contract
// also covers the bounded capacity behaviour.
func Mapping[K comparable, V any](
	subject func(tb testing.TB, capacity int) storagekit.Mapping[K, V],
	makeK func(tb testing.TB) K,
	makeV func(tb testing.TB) V,
) testcase.Suite {
	s := testcase.NewSpec(nil)

	m := let.Var(s, func(t *testcase.T) storagekit.Mapping[K, V] {
		return subject(t, contractCapacity)
	})

	s.Test("a new mapping is empty", func(t *testcase.T) {
		assert.True(t, m.Get(t).IsEmpty())
		assert.Equal(t, 0, m.Get(t).Len())
	})

	s.Test("insert then get returns the value", func(t *testcase.T) {
		sub := m.Get(t)
		k, v := makeK(t), makeV(t)
		_, replaced, err := sub.Insert(k, v)
		assert.NoError(t, err)
		assert.False(t, replaced)
		got, err := sub.Get(k)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 1, sub.Len())
	})

	s.Test("insert on a present key replaces and returns the previous value", func(t *testcase.T) {
		sub := m.Get(t)
		k, v1, v2 := makeK(t), makeV(t), makeV(t)
		_, _, err := sub.Insert(k, v1)
		assert.NoError(t, err)
		prev, replaced, err := sub.Insert(k, v2)
		assert.NoError(t, err)
		assert.True(t, replaced)
		assert.Equal(t, v1, prev)
		got, err := sub.Get(k)
		assert.NoError(t, err)
		assert.Equal(t, v2, got)
		assert.Equal(t, 1, sub.Len(), "keys are unique in the mapping")
	})

	s.Test("get, at and remove on an absent key report key not found", func(t *testcase.T) {
		sub := m.Get(t)
		k := makeK(t)
		_, err := sub.Get(k)
		assert.ErrorIs(t, storagekit.ErrKeyNotFound, err)
		_, err = sub.At(k)
		assert.ErrorIs(t, storagekit.ErrKeyNotFound, err)
		_, err = sub.Remove(k)
		assert.ErrorIs(t, storagekit.ErrKeyNotFound, err)
	})

	s.Test("remove deletes the key and returns its value", func(t *testcase.T) {
		sub := m.Get(t)
		k, v := makeK(t), makeV(t)
		_, _, err := sub.Insert(k, v)
		assert.NoError(t, err)
		got, err := sub.Remove(k)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
		_, err = sub.Get(k)
		assert.ErrorIs(t, storagekit.ErrKeyNotFound, err)
		assert.False(t, sub.Contains(k))
		assert.Equal(t, 0, sub.Len())
	})

	s.Test("lookup and contains reflect membership", func(t *testcase.T) {
		sub := m.Get(t)
		k, v := makeK(t), makeV(t)
		_, ok := sub.Lookup(k)
		assert.False(t, ok)
		assert.False(t, sub.Contains(k))
		_, _, err := sub.Insert(k, v)
		assert.NoError(t, err)
		got, ok := sub.Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.True(t, sub.Contains(k))
	})

	s.Test("at yields a pointer that mutates the value in place", func(t *testcase.T) {
		sub := m.Get(t)
		k := makeK(t)
		_, _, err := sub.Insert(k, makeV(t))
		assert.NoError(t, err)
		exp := makeV(t)
		ptr, err := sub.At(k)
		assert.NoError(t, err)
		assert.NotNil(t, ptr)
		*ptr = exp
		got, err := sub.Get(k)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("keys, ToMap and Iter agree on the contents", func(t *testcase.T) {
		sub := m.Get(t)
		expected := map[K]V{}
		t.Random.Repeat(1, contractCapacity, func() {
			k := random.Unique(func() K { return makeK(t) }, keysOf(expected)...)
			v := makeV(t)
			expected[k] = v
			_, _, err := sub.Insert(k, v)
			assert.NoError(t, err)
		})
		assert.ContainsExactly(t, keysOf(expected), sub.Keys())
		assert.Equal(t, expected, sub.ToMap())
		collected := map[K]V{}
		for k, v := range sub.Iter() {
			collected[k] = v
		}
		assert.Equal(t, expected, collected)
	})

	s.Test("clear empties the mapping", func(t *testcase.T) {
		sub := m.Get(t)
		k := makeK(t)
		_, _, err := sub.Insert(k, makeV(t))
		assert.NoError(t, err)
		sub.Clear()
		assert.True(t, sub.IsEmpty())
		assert.False(t, sub.Contains(k))
		_, _, err = sub.Insert(makeK(t), makeV(t))
		assert.NoError(t, err, "a cleared mapping accepts new entries")
	})

	s.Context("when the mapping is bounded", func(s *testcase.Spec) {
		capacity := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, contractCapacity)
		})
		bounded := let.Var(s, func(t *testcase.T) storagekit.Mapping[K, V] {
			sub := subject(t, capacity.Get(t))
			if _, ok := sub.(storagekit.Capper); !ok {
				t.Skip("unbounded mapping implementation")
			}
			return sub
		})
		fill := func(t *testcase.T, sub storagekit.Mapping[K, V]) []K {
			var keys []K
			for i := 0; i < capacity.Get(t); i++ {
				k := random.Unique(func() K { return makeK(t) }, keys...)
				_, _, err := sub.Insert(k, makeV(t))
				assert.NoError(t, err)
				keys = append(keys, k)
			}
			return keys
		}

		s.Test("a new key on a full mapping is rejected", func(t *testcase.T) {
			sub := bounded.Get(t)
			keys := fill(t, sub)
			_, _, err := sub.Insert(random.Unique(func() K { return makeK(t) }, keys...), makeV(t))
			assert.ErrorIs(t, storagekit.ErrCapacityExceeded, err)
			assert.Equal(t, capacity.Get(t), sub.Len(), "a rejected insert must not mutate")
		})

		s.Test("replacing an existing key on a full mapping succeeds", func(t *testcase.T) {
			sub := bounded.Get(t)
			keys := fill(t, sub)
			k := keys[t.Random.IntN(len(keys))]
			exp := makeV(t)
			_, replaced, err := sub.Insert(k, exp)
			assert.NoError(t, err)
			assert.True(t, replaced)
			got, err := sub.Get(k)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		})

		s.Test("removal makes room for a further insert", func(t *testcase.T) {
			sub := bounded.Get(t)
			keys := fill(t, sub)
			_, err := sub.Remove(keys[0])
			assert.NoError(t, err)
			_, _, err = sub.Insert(random.Unique(func() K { return makeK(t) }, keys...), makeV(t))
			assert.NoError(t, err)
		})
	})

	return s.AsSuite("Mapping")
}

func keysOf[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
