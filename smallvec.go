package storagekit

import (
	"fmt"
	"iter"
)

// SmallVec is the packed-array-backed Sequence implementation.
//
// It behaves like Vec, but starts out on an inline block of slots sized at
// construction. The first time an element no longer fits the inline block,
// the whole content moves to heap storage and stays there; the sequence
// never moves back inline. Push and Insert therefore never fail with
// ErrCapacityExceeded, while workloads that stay within the inline capacity
// never touch the growable storage path.
type SmallVec[T any] struct {
	inline ArrayVec[T]
	heap   *Vec[T]
}

var _ Sequence[any] = (*SmallVec[any])(nil)

// NewSmallVec creates an empty SmallVec with the given inline capacity.
func NewSmallVec[T any](inlineCapacity int) *SmallVec[T] {
	return &SmallVec[T]{inline: *NewArrayVec[T](inlineCapacity)}
}

func (sv *SmallVec[T]) spilled() bool { return sv.heap != nil }

// seq returns the currently active backing sequence.
func (sv *SmallVec[T]) seq() Sequence[T] {
	if sv.spilled() {
		return sv.heap
	}
	return &sv.inline
}

// spill moves every inline element onto the heap.
// Take vacates the inline slots, so nothing stays pinned by the inline block.
func (sv *SmallVec[T]) spill() {
	heap := NewVec[T](2 * (sv.inline.Cap() + 1))
	for i := 0; i < sv.inline.length; i++ {
		_ = heap.Push(sv.inline.slots[i].Take())
	}
	sv.inline.length = 0
	sv.heap = heap
}

func (sv *SmallVec[T]) Push(val T) error {
	if !sv.spilled() && sv.inline.Len() == sv.inline.Cap() {
		sv.spill()
	}
	return sv.seq().Push(val)
}

func (sv *SmallVec[T]) Insert(index int, val T) error {
	if !sv.spilled() && sv.inline.Len() == sv.inline.Cap() {
		if index < 0 || sv.inline.Len() < index {
			return ErrOutOfBounds.F("index:%d length:%d", index, sv.inline.Len())
		}
		sv.spill()
	}
	return sv.seq().Insert(index, val)
}

func (sv *SmallVec[T]) Pop() (T, error) { return sv.seq().Pop() }

func (sv *SmallVec[T]) Get(index int) (T, error) { return sv.seq().Get(index) }

func (sv *SmallVec[T]) At(index int) (*T, error) { return sv.seq().At(index) }

func (sv *SmallVec[T]) Set(index int, val T) error { return sv.seq().Set(index, val) }

func (sv *SmallVec[T]) Remove(index int) (T, error) { return sv.seq().Remove(index) }

func (sv *SmallVec[T]) Extend(vs iter.Seq[T]) error {
	for val := range vs {
		if err := sv.Push(val); err != nil {
			return err
		}
	}
	return nil
}

func (sv *SmallVec[T]) Iter() iter.Seq[T] { return sv.seq().Iter() }

func (sv *SmallVec[T]) ToSlice() []T { return sv.seq().ToSlice() }

func (sv *SmallVec[T]) Len() int { return sv.seq().Len() }

func (sv *SmallVec[T]) IsEmpty() bool { return sv.seq().IsEmpty() }

// Clear removes every element. A spilled SmallVec stays on the heap.
func (sv *SmallVec[T]) Clear() { sv.seq().Clear() }

// Clone returns an independent copy on the same backing strategy.
func (sv *SmallVec[T]) Clone() *SmallVec[T] {
	if sv.spilled() {
		return &SmallVec[T]{heap: sv.heap.Clone()}
	}
	return &SmallVec[T]{inline: *sv.inline.Clone()}
}

func (sv *SmallVec[T]) String() string {
	return fmt.Sprintf("SmallVec%v", sv.ToSlice())
}
