package storagekit

import (
	"fmt"
	"iter"
	"slices"
)

// Vec is the heap-backed Sequence implementation.
// It grows without bound using the runtime's amortized slice growth,
// so Push and Insert never fail with ErrCapacityExceeded.
//
// The zero value of Vec is an empty, ready to use sequence.
type Vec[T any] struct {
	vals []T
}

var _ Sequence[any] = (*Vec[any])(nil)

// NewVec creates an empty Vec, pre-sizing its backing storage for the given
// number of elements. The capacity is a hint, not a bound.
func NewVec[T any](capacity int) *Vec[T] {
	return &Vec[T]{vals: make([]T, 0, capacity)}
}

// VecOf creates a Vec holding the given values.
func VecOf[T any](vs ...T) *Vec[T] {
	return &Vec[T]{vals: slices.Clone(vs)}
}

func (v *Vec[T]) Push(val T) error {
	v.vals = append(v.vals, val)
	return nil
}

func (v *Vec[T]) Pop() (T, error) {
	if len(v.vals) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	index := len(v.vals) - 1
	val := v.vals[index]
	var zero T
	v.vals[index] = zero // release the reference held by the backing array
	v.vals = v.vals[:index]
	return val, nil
}

func (v *Vec[T]) Get(index int) (T, error) {
	if index < 0 || len(v.vals) <= index {
		var zero T
		return zero, ErrOutOfBounds.F("index:%d length:%d", index, len(v.vals))
	}
	return v.vals[index], nil
}

func (v *Vec[T]) At(index int) (*T, error) {
	if index < 0 || len(v.vals) <= index {
		return nil, ErrOutOfBounds.F("index:%d length:%d", index, len(v.vals))
	}
	return &v.vals[index], nil
}

func (v *Vec[T]) Set(index int, val T) error {
	if index < 0 || len(v.vals) <= index {
		return ErrOutOfBounds.F("index:%d length:%d", index, len(v.vals))
	}
	v.vals[index] = val
	return nil
}

func (v *Vec[T]) Insert(index int, val T) error {
	if index < 0 || len(v.vals) < index {
		return ErrOutOfBounds.F("index:%d length:%d", index, len(v.vals))
	}
	v.vals = slices.Insert(v.vals, index, val)
	return nil
}

func (v *Vec[T]) Remove(index int) (T, error) {
	if index < 0 || len(v.vals) <= index {
		var zero T
		return zero, ErrOutOfBounds.F("index:%d length:%d", index, len(v.vals))
	}
	val := v.vals[index]
	v.vals = slices.Delete(v.vals, index, index+1)
	return val, nil
}

func (v *Vec[T]) Extend(vs iter.Seq[T]) error {
	for val := range vs {
		v.vals = append(v.vals, val)
	}
	return nil
}

func (v *Vec[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.vals {
			if !yield(val) {
				return
			}
		}
	}
}

func (v *Vec[T]) ToSlice() []T {
	return slices.Clone(v.vals)
}

func (v *Vec[T]) Len() int { return len(v.vals) }

func (v *Vec[T]) IsEmpty() bool { return len(v.vals) == 0 }

func (v *Vec[T]) Clear() {
	clear(v.vals) // zero the elements so the kept backing array pins nothing
	v.vals = v.vals[:0]
}

// Clone returns an independent copy of the sequence.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{vals: slices.Clone(v.vals)}
}

func (v *Vec[T]) String() string {
	return fmt.Sprintf("Vec%v", v.vals)
}
