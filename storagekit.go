// Package storagekit provides sequence and mapping containers with a shared
// API surface over interchangeable backing storage strategies.
//
// The heap-backed implementations (Vec, HashMap) grow without bound.
// The bounded implementations (ArrayVec, ArrayMap) allocate their backing
// storage once at construction and never grow, reporting ErrCapacityExceeded
// instead, which makes them suitable for code that must keep its memory use
// fixed after startup. SmallVec starts on an inline block and spills to the
// heap when it outgrows it.
//
// The StorageVec and StorageMap aliases select one backing strategy for the
// whole build via the storagekit_bounded and storagekit_inline build tags,
// so callers that must run in both unbounded and fixed-memory deployments
// can share a single code path.
//
// None of the container types are safe for unsynchronized concurrent
// mutation; if an instance is shared between goroutines, guarding it is the
// caller's responsibility.
package storagekit

import "iter"

// Sequence is an ordered, index-addressable collection of T that preserves
// insertion order. Indexes are valid in [0, Len()).
type Sequence[T any] interface {
	// Push appends the value at the end of the sequence.
	// Bounded implementations return ErrCapacityExceeded when full.
	Push(v T) error
	// Pop removes and returns the last element, or returns ErrEmpty.
	Pop() (T, error)
	// Get returns the element at the given index, or ErrOutOfBounds.
	Get(index int) (T, error)
	// At returns a pointer to the element at the given index for in-place
	// mutation, or ErrOutOfBounds. The pointer is valid until the next
	// mutation of the sequence.
	At(index int) (*T, error)
	// Set replaces the element at the given index, or returns ErrOutOfBounds.
	Set(index int, v T) error
	// Insert places the value at the given index, shifting the elements at
	// and after it one position toward the end. Inserting at Len() appends.
	Insert(index int, v T) error
	// Remove deletes and returns the element at the given index, shifting
	// later elements one position toward the start.
	Remove(index int) (T, error)
	// Extend pushes every value yielded by the iterator. On a bounded
	// sequence it stops at the first value that no longer fits and reports
	// ErrCapacityExceeded; values pushed before that point stay pushed.
	Extend(vs iter.Seq[T]) error
	// Iter yields the elements in index order. The returned iterator is
	// restartable and reflects the live state of the sequence.
	Iter() iter.Seq[T]
	ToSlice() []T
	IsEmpty() bool
	// Clear removes every element. Capacity is unchanged.
	Clear()
	Sizer
}

// Mapping is an associative container of unique keys K to values V.
// No iteration order is guaranteed by any implementation.
type Mapping[K comparable, V any] interface {
	// Insert associates the value with the key. If the key was already
	// present, its previous value is returned with replaced set to true.
	// Bounded implementations return ErrCapacityExceeded when a NEW key
	// would not fit; replacing an existing key always succeeds.
	Insert(key K, val V) (prev V, replaced bool, err error)
	// Get returns the value associated with the key, or ErrKeyNotFound.
	Get(key K) (V, error)
	// At returns a pointer to the value associated with the key for
	// in-place mutation, or ErrKeyNotFound. The pointer is valid until the
	// next mutation of the mapping.
	At(key K) (*V, error)
	// Lookup returns the value associated with the key, and whether the
	// key was present.
	Lookup(key K) (V, bool)
	Contains(key K) bool
	// Remove deletes the key and returns its value, or ErrKeyNotFound.
	Remove(key K) (V, error)
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	IsEmpty() bool
	Clear()
	Sizer
}

type Sizer interface {
	Len() int
}

// Capper is implemented by the bounded containers,
// for which Cap reports the fixed capacity set at construction.
type Capper interface {
	Cap() int
}
