//go:build storagekit_bounded

package storagekit

// StorageVec is the build-selected Sequence backing.
// Under the storagekit_bounded tag it is the fixed-capacity ArrayVec.
type StorageVec[T any] = ArrayVec[T]

// StorageMap is the build-selected Mapping backing.
// Under the storagekit_bounded tag it is the fixed-capacity ArrayMap.
type StorageMap[K comparable, V any] = ArrayMap[K, V]

// NewStorageVec creates the build-selected sequence.
// In the bounded backing the capacity is a hard bound.
func NewStorageVec[T any](capacity int) *StorageVec[T] {
	return NewArrayVec[T](capacity)
}

// NewStorageMap creates the build-selected mapping.
// In the bounded backing the capacity is a hard bound.
func NewStorageMap[K comparable, V any](capacity int) *StorageMap[K, V] {
	return NewArrayMap[K, V](capacity)
}
