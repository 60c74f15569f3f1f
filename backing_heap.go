//go:build !storagekit_bounded && !storagekit_inline

package storagekit

// StorageVec is the build-selected Sequence backing.
// Without build tags it is the heap-backed Vec.
type StorageVec[T any] = Vec[T]

// StorageMap is the build-selected Mapping backing.
// Without build tags it is the heap-backed HashMap.
type StorageMap[K comparable, V any] = HashMap[K, V]

// NewStorageVec creates the build-selected sequence. In the heap backing the
// capacity is a pre-sizing hint; in the bounded backing it is a hard bound.
func NewStorageVec[T any](capacity int) *StorageVec[T] {
	return NewVec[T](capacity)
}

// NewStorageMap creates the build-selected mapping. In the heap backing the
// capacity is a pre-sizing hint; in the bounded backing it is a hard bound.
func NewStorageMap[K comparable, V any](capacity int) *StorageMap[K, V] {
	return NewHashMap[K, V](capacity)
}
