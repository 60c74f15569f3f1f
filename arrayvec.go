package storagekit

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/storagekit/internal/slot"
)

// ArrayVec is the bounded Sequence implementation.
//
// Its backing storage is a run of slots allocated once at construction,
// and it never grows: Push and Insert return ErrCapacityExceeded when
// Len() == Cap(). Elements always occupy the slots [0, Len()) in order;
// slots at and after Len() are vacant. Every mutation keeps that packing
// invariant, vacating and filling slots through the slot package so each
// removed or overwritten element is released exactly once.
type ArrayVec[T any] struct {
	slots  []slot.Slot[T]
	length int
}

var _ Sequence[any] = (*ArrayVec[any])(nil)
var _ Capper = (*ArrayVec[any])(nil)

// NewArrayVec creates an empty ArrayVec with the given fixed capacity.
func NewArrayVec[T any](capacity int) *ArrayVec[T] {
	return &ArrayVec[T]{slots: make([]slot.Slot[T], capacity)}
}

// ArrayVecOf creates an ArrayVec with the given fixed capacity,
// holding the given values.
// It returns ErrCapacityExceeded when more values are given than capacity.
func ArrayVecOf[T any](capacity int, vs ...T) (*ArrayVec[T], error) {
	if capacity < len(vs) {
		return nil, ErrCapacityExceeded.F("capacity:%d values:%d", capacity, len(vs))
	}
	av := NewArrayVec[T](capacity)
	for _, v := range vs {
		av.slots[av.length].Put(v)
		av.length++
	}
	return av, nil
}

func (av *ArrayVec[T]) Push(val T) error {
	if av.length == len(av.slots) {
		return ErrCapacityExceeded.F("capacity:%d", len(av.slots))
	}
	av.slots[av.length].Put(val)
	av.length++
	return nil
}

func (av *ArrayVec[T]) Pop() (T, error) {
	if av.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	av.length--
	return av.slots[av.length].Take(), nil
}

func (av *ArrayVec[T]) Get(index int) (T, error) {
	if index < 0 || av.length <= index {
		var zero T
		return zero, ErrOutOfBounds.F("index:%d length:%d", index, av.length)
	}
	return av.slots[index].Get(), nil
}

func (av *ArrayVec[T]) At(index int) (*T, error) {
	if index < 0 || av.length <= index {
		return nil, ErrOutOfBounds.F("index:%d length:%d", index, av.length)
	}
	return av.slots[index].Borrow(), nil
}

func (av *ArrayVec[T]) Set(index int, val T) error {
	if index < 0 || av.length <= index {
		return ErrOutOfBounds.F("index:%d length:%d", index, av.length)
	}
	av.slots[index].Drop() // release the overwritten element
	av.slots[index].Put(val)
	return nil
}

func (av *ArrayVec[T]) Insert(index int, val T) error {
	if index < 0 || av.length < index {
		return ErrOutOfBounds.F("index:%d length:%d", index, av.length)
	}
	if av.length == len(av.slots) {
		return ErrCapacityExceeded.F("capacity:%d", len(av.slots))
	}
	for i := av.length; index < i; i-- {
		av.slots[i].Put(av.slots[i-1].Take())
	}
	av.slots[index].Put(val)
	av.length++
	return nil
}

func (av *ArrayVec[T]) Remove(index int) (T, error) {
	if index < 0 || av.length <= index {
		var zero T
		return zero, ErrOutOfBounds.F("index:%d length:%d", index, av.length)
	}
	val := av.slots[index].Take()
	// shift the tail one slot toward the start;
	// Take vacates each source slot, so the slot past the new length is clean
	for i := index; i < av.length-1; i++ {
		av.slots[i].Put(av.slots[i+1].Take())
	}
	av.length--
	return val, nil
}

func (av *ArrayVec[T]) Extend(vs iter.Seq[T]) error {
	for val := range vs {
		if err := av.Push(val); err != nil {
			return err
		}
	}
	return nil
}

func (av *ArrayVec[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < av.length; i++ {
			if !yield(av.slots[i].Get()) {
				return
			}
		}
	}
}

func (av *ArrayVec[T]) ToSlice() []T {
	vs := make([]T, 0, av.length)
	for i := 0; i < av.length; i++ {
		vs = append(vs, av.slots[i].Get())
	}
	return vs
}

func (av *ArrayVec[T]) Len() int { return av.length }

// Cap returns the fixed capacity set at construction.
func (av *ArrayVec[T]) Cap() int { return len(av.slots) }

func (av *ArrayVec[T]) IsEmpty() bool { return av.length == 0 }

func (av *ArrayVec[T]) Clear() {
	for i := 0; i < av.length; i++ {
		av.slots[i].Drop()
	}
	av.length = 0
}

// Clone returns an independent copy with the same capacity and contents.
func (av *ArrayVec[T]) Clone() *ArrayVec[T] {
	clone := NewArrayVec[T](len(av.slots))
	for i := 0; i < av.length; i++ {
		clone.slots[i].Put(av.slots[i].Get())
	}
	clone.length = av.length
	return clone
}

func (av *ArrayVec[T]) String() string {
	var sb strings.Builder
	sb.WriteString("ArrayVec[")
	for i := 0; i < av.length; i++ {
		if 0 < i {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", av.slots[i].Get())
	}
	sb.WriteString("]")
	return sb.String()
}
