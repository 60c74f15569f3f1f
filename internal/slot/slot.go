// Package slot provides the storage cell primitive that backs the bounded
// container types.
//
// A Slot is a fixed storage location that holds at most one live value.
// The Slot itself never knows whether it currently holds one; occupancy is
// bookkeeping that belongs to the owning container, typically a length
// counter over a packed run of slots. Keeping the slot oblivious keeps the
// precondition discipline in a single place: the container decides when a
// slot is vacant or occupied, and the slot only executes the transition.
//
// Preconditions are stated on each operation. Violating them cannot corrupt
// memory the way it would in a language with manual memory management, but
// it can pin garbage (a value the container considers gone still being
// referenced from the backing array) or surface stale values, both of which
// are bugs in the owning container rather than in the caller's input.
package slot

// Slot holds at most one value of T.
//
// The zero value of Slot is a vacant slot, which makes a freshly allocated
// []Slot[T] an all-vacant backing array without further initialisation.
type Slot[T any] struct {
	val T
}

// Put stores v into the slot.
//
// Precondition: the slot is vacant. Put does not release a previously held
// value; overwriting an occupied slot without a prior Take or Drop leaks
// whatever the old value referenced until the slot is written again.
func (s *Slot[T]) Put(v T) {
	s.val = v
}

// Get copies the held value out without vacating the slot.
//
// Precondition: the slot is occupied.
func (s *Slot[T]) Get() T {
	return s.val
}

// Borrow returns a pointer to the held value for in-place mutation.
// The pointer is only valid until the owning container mutates again.
//
// Precondition: the slot is occupied.
func (s *Slot[T]) Borrow() *T {
	return &s.val
}

// Take moves the held value out and leaves the slot vacant.
// The cell is zeroed so the slot no longer pins anything the value referenced.
//
// Precondition: the slot is occupied.
func (s *Slot[T]) Take() T {
	v := s.val
	var zero T
	s.val = zero
	return v
}

// Drop discards the held value without returning it, zeroing the cell.
// Containers use it on the remove, overwrite and clear paths.
//
// Precondition: the slot is occupied.
func (s *Slot[T]) Drop() {
	var zero T
	s.val = zero
}
