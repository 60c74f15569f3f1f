package storagekit

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/storagekit/internal/slot"
)

// ArrayMap is the bounded Mapping implementation.
//
// Its backing storage is a run of key/value slots allocated once at
// construction. Lookup is a linear scan over the occupied slots comparing
// keys, which is O(capacity) in the worst case; the trade-off is intentional
// for the small capacities this type is meant for, since a hash table would
// reintroduce the unbounded allocations ArrayMap exists to avoid. Removal
// swaps the last occupied slot into the vacated position, keeping the
// occupied slots packed at [0, Len()).
type ArrayMap[K comparable, V any] struct {
	slots  []slot.Slot[mapEntry[K, V]]
	length int
}

type mapEntry[K comparable, V any] struct {
	key K
	val V
}

var _ Mapping[any, any] = (*ArrayMap[any, any])(nil)
var _ Capper = (*ArrayMap[any, any])(nil)

// NewArrayMap creates an empty ArrayMap with the given fixed capacity.
func NewArrayMap[K comparable, V any](capacity int) *ArrayMap[K, V] {
	return &ArrayMap[K, V]{slots: make([]slot.Slot[mapEntry[K, V]], capacity)}
}

// index returns the occupied slot position of the key, or -1.
func (am *ArrayMap[K, V]) index(key K) int {
	for i := 0; i < am.length; i++ {
		if am.slots[i].Borrow().key == key {
			return i
		}
	}
	return -1
}

func (am *ArrayMap[K, V]) Insert(key K, val V) (V, bool, error) {
	if i := am.index(key); i != -1 {
		entry := am.slots[i].Borrow()
		prev := entry.val
		entry.val = val
		return prev, true, nil
	}
	var zero V
	if am.length == len(am.slots) {
		return zero, false, ErrCapacityExceeded.F("capacity:%d", len(am.slots))
	}
	am.slots[am.length].Put(mapEntry[K, V]{key: key, val: val})
	am.length++
	return zero, false, nil
}

func (am *ArrayMap[K, V]) Get(key K) (V, error) {
	i := am.index(key)
	if i == -1 {
		var zero V
		return zero, ErrKeyNotFound.F("key:%v", key)
	}
	return am.slots[i].Borrow().val, nil
}

func (am *ArrayMap[K, V]) At(key K) (*V, error) {
	i := am.index(key)
	if i == -1 {
		return nil, ErrKeyNotFound.F("key:%v", key)
	}
	return &am.slots[i].Borrow().val, nil
}

func (am *ArrayMap[K, V]) Lookup(key K) (V, bool) {
	i := am.index(key)
	if i == -1 {
		var zero V
		return zero, false
	}
	return am.slots[i].Borrow().val, true
}

func (am *ArrayMap[K, V]) Contains(key K) bool {
	return am.index(key) != -1
}

func (am *ArrayMap[K, V]) Remove(key K) (V, error) {
	i := am.index(key)
	if i == -1 {
		var zero V
		return zero, ErrKeyNotFound.F("key:%v", key)
	}
	entry := am.slots[i].Take()
	// keep the occupied slots packed: move the last entry into the gap
	if last := am.length - 1; i != last {
		am.slots[i].Put(am.slots[last].Take())
	}
	am.length--
	return entry.val, nil
}

func (am *ArrayMap[K, V]) Keys() []K {
	keys := make([]K, 0, am.length)
	for i := 0; i < am.length; i++ {
		keys = append(keys, am.slots[i].Borrow().key)
	}
	return keys
}

func (am *ArrayMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, am.length)
	for i := 0; i < am.length; i++ {
		entry := am.slots[i].Borrow()
		out[entry.key] = entry.val
	}
	return out
}

func (am *ArrayMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < am.length; i++ {
			entry := am.slots[i].Borrow()
			if !yield(entry.key, entry.val) {
				return
			}
		}
	}
}

func (am *ArrayMap[K, V]) Len() int { return am.length }

// Cap returns the fixed capacity set at construction.
func (am *ArrayMap[K, V]) Cap() int { return len(am.slots) }

func (am *ArrayMap[K, V]) IsEmpty() bool { return am.length == 0 }

func (am *ArrayMap[K, V]) Clear() {
	for i := 0; i < am.length; i++ {
		am.slots[i].Drop()
	}
	am.length = 0
}

// Clone returns an independent copy with the same capacity and contents.
func (am *ArrayMap[K, V]) Clone() *ArrayMap[K, V] {
	clone := NewArrayMap[K, V](len(am.slots))
	for i := 0; i < am.length; i++ {
		clone.slots[i].Put(am.slots[i].Get())
	}
	clone.length = am.length
	return clone
}

func (am *ArrayMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("ArrayMap[")
	for i := 0; i < am.length; i++ {
		if 0 < i {
			sb.WriteString(" ")
		}
		entry := am.slots[i].Borrow()
		fmt.Fprintf(&sb, "%v:%v", entry.key, entry.val)
	}
	sb.WriteString("]")
	return sb.String()
}
