package storagekit

import (
	"fmt"
	"iter"
)

// HashMap is the heap-backed Mapping implementation.
//
// It is built on the builtin map, giving average O(1) lookup, and grows
// without bound: Insert never fails with ErrCapacityExceeded. Values are
// boxed internally so At can hand out a pointer that stays valid across
// later inserts.
//
// The zero value of HashMap is an empty, ready to use mapping.
type HashMap[K comparable, V any] struct {
	m map[K]*V
}

var _ Mapping[any, any] = (*HashMap[any, any])(nil)

// NewHashMap creates an empty HashMap, pre-sizing its hash table for the
// given number of entries. The capacity is a hint, not a bound.
func NewHashMap[K comparable, V any](capacity int) *HashMap[K, V] {
	return &HashMap[K, V]{m: make(map[K]*V, capacity)}
}

func (hm *HashMap[K, V]) Insert(key K, val V) (V, bool, error) {
	if hm.m == nil {
		hm.m = make(map[K]*V)
	}
	if p, ok := hm.m[key]; ok {
		prev := *p
		*p = val
		return prev, true, nil
	}
	hm.m[key] = &val
	var zero V
	return zero, false, nil
}

func (hm *HashMap[K, V]) Get(key K) (V, error) {
	p, ok := hm.m[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound.F("key:%v", key)
	}
	return *p, nil
}

func (hm *HashMap[K, V]) At(key K) (*V, error) {
	p, ok := hm.m[key]
	if !ok {
		return nil, ErrKeyNotFound.F("key:%v", key)
	}
	return p, nil
}

func (hm *HashMap[K, V]) Lookup(key K) (V, bool) {
	p, ok := hm.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	return *p, true
}

func (hm *HashMap[K, V]) Contains(key K) bool {
	_, ok := hm.m[key]
	return ok
}

func (hm *HashMap[K, V]) Remove(key K) (V, error) {
	p, ok := hm.m[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound.F("key:%v", key)
	}
	delete(hm.m, key)
	return *p, nil
}

func (hm *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(hm.m))
	for k := range hm.m {
		keys = append(keys, k)
	}
	return keys
}

func (hm *HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(hm.m))
	for k, p := range hm.m {
		out[k] = *p
	}
	return out
}

func (hm *HashMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, p := range hm.m {
			if !yield(k, *p) {
				return
			}
		}
	}
}

func (hm *HashMap[K, V]) Len() int { return len(hm.m) }

func (hm *HashMap[K, V]) IsEmpty() bool { return len(hm.m) == 0 }

func (hm *HashMap[K, V]) Clear() { clear(hm.m) }

// Clone returns an independent copy of the mapping.
func (hm *HashMap[K, V]) Clone() *HashMap[K, V] {
	clone := NewHashMap[K, V](len(hm.m))
	for k, p := range hm.m {
		val := *p
		clone.m[k] = &val
	}
	return clone
}

func (hm *HashMap[K, V]) String() string {
	return fmt.Sprintf("HashMap%v", hm.ToMap())
}
