package storagekit

import "go.llib.dev/storagekit/internal/errkit"

const (
	// ErrCapacityExceeded is returned by insert-like operations on a bounded
	// container that is already at capacity. It is a caller input error;
	// the remedy is to size the container for the expected load, not to retry.
	ErrCapacityExceeded errkit.Error = "storage capacity exceeded"
	// ErrOutOfBounds is returned for indexes outside [0, Len()).
	ErrOutOfBounds errkit.Error = "index out of bounds"
	// ErrEmpty is returned by Pop on an empty sequence.
	ErrEmpty errkit.Error = "storage is empty"
	// ErrKeyNotFound is returned by mapping operations on an absent key.
	ErrKeyNotFound errkit.Error = "key not found"
)
