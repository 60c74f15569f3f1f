package storagekit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/storagekit"
	"go.llib.dev/storagekit/storagekitcontract"
)

func TestSmallVec(t *testing.T) {
	testcase.RunSuite(t, storagekitcontract.Sequence[int](
		func(tb testing.TB, capacity int) storagekit.Sequence[int] {
			return storagekit.NewSmallVec[int](capacity)
		},
		func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.Int()
		},
	))
}

func TestSmallVec_spillsPastTheInlineCapacity(t *testing.T) {
	const inlineCapacity = 4
	sv := storagekit.NewSmallVec[int](inlineCapacity)

	var exp []int
	for i := 0; i < inlineCapacity*3; i++ {
		assert.NoError(t, sv.Push(i), "push must not fail on capacity overflow")
		exp = append(exp, i)
	}
	assert.Equal(t, exp, sv.ToSlice(), "contents and ordering survive the spill")

	got, err := sv.Pop()
	assert.NoError(t, err)
	assert.Equal(t, inlineCapacity*3-1, got)
}

func TestSmallVec_insertOnFullInlineBlock(t *testing.T) {
	sv := storagekit.NewSmallVec[int](2)
	assert.NoError(t, sv.Push(1))
	assert.NoError(t, sv.Push(3))
	assert.NoError(t, sv.Insert(1, 2), "insert on a full inline block spills instead of failing")
	assert.Equal(t, []int{1, 2, 3}, sv.ToSlice())

	assert.ErrorIs(t, storagekit.ErrOutOfBounds, sv.Insert(sv.Len()+1, 4))
}

func TestSmallVec_zeroValueSpillsImmediately(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	var sv storagekit.SmallVec[string]
	exp := rnd.String()
	assert.NoError(t, sv.Push(exp))
	got, err := sv.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestSmallVec_Clone(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("inline", func(t *testing.T) {
		og := storagekit.NewSmallVec[int](4)
		assert.NoError(t, og.Push(rnd.Int()))
		clone := og.Clone()
		assert.Equal(t, og.ToSlice(), clone.ToSlice())
		assert.NoError(t, clone.Push(rnd.Int()))
		assert.Equal(t, 1, og.Len(), "mutating the clone must not affect the original")
	})

	t.Run("spilled", func(t *testing.T) {
		og := storagekit.NewSmallVec[int](1)
		first := rnd.Int()
		assert.NoError(t, og.Push(first))
		assert.NoError(t, og.Push(rnd.Int()))
		clone := og.Clone()
		assert.Equal(t, og.ToSlice(), clone.ToSlice())
		assert.NoError(t, clone.Set(0, random.Unique(rnd.Int, first)))
		got, err := og.Get(0)
		assert.NoError(t, err)
		assert.Equal(t, first, got, "mutating the clone must not affect the original")
	})
}
