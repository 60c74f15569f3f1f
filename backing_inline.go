//go:build storagekit_inline && !storagekit_bounded

package storagekit

// StorageVec is the build-selected Sequence backing.
// Under the storagekit_inline tag it is SmallVec: a heap-capable build that
// prefers inline storage and spills only past the construction capacity.
type StorageVec[T any] = SmallVec[T]

// StorageMap is the build-selected Mapping backing.
// The inline variant keeps the hash-backed mapping: the bounded linear-scan
// table only pays off where growable storage is unavailable altogether.
type StorageMap[K comparable, V any] = HashMap[K, V]

// NewStorageVec creates the build-selected sequence.
// In the inline backing the capacity sizes the inline block.
func NewStorageVec[T any](capacity int) *StorageVec[T] {
	return NewSmallVec[T](capacity)
}

// NewStorageMap creates the build-selected mapping.
// In the inline backing the capacity is a pre-sizing hint.
func NewStorageMap[K comparable, V any](capacity int) *StorageMap[K, V] {
	return NewHashMap[K, V](capacity)
}
