//go:build !storagekit_bounded && !storagekit_inline

package storagekit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/storagekit"
)

func TestStorageVec_heapBacking(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	vec := storagekit.NewStorageVec[int](1)

	// the heap backing treats capacity as a hint, never as a bound
	for i := 0; i < 10; i++ {
		assert.NoError(t, vec.Push(rnd.Int()))
	}
	assert.Equal(t, 10, vec.Len())

	var _ *storagekit.Vec[int] = vec
	var _ storagekit.Sequence[int] = vec
}

func TestStorageMap_heapBacking(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	m := storagekit.NewStorageMap[string, int](1)

	for i := 0; i < 10; i++ {
		_, _, err := m.Insert(rnd.StringNC(8, random.CharsetAlpha()), rnd.Int())
		assert.NoError(t, err)
	}
	assert.Equal(t, 10, m.Len())

	var _ *storagekit.HashMap[string, int] = m
	var _ storagekit.Mapping[string, int] = m
}
