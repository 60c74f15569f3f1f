package storagekit_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/storagekit"
	"go.llib.dev/storagekit/storagekitcontract"
)

func TestHashMap(t *testing.T) {
	testcase.RunSuite(t, storagekitcontract.Mapping[string, int](
		func(tb testing.TB, capacity int) storagekit.Mapping[string, int] {
			return storagekit.NewHashMap[string, int](capacity)
		},
		func(tb testing.TB) string {
			return testcase.ToT(&tb).Random.StringNC(8, random.CharsetAlpha())
		},
		func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.Int()
		},
	))
}

func TestHashMap_withUUIDKeys(t *testing.T) {
	testcase.RunSuite(t, storagekitcontract.Mapping[uuid.UUID, string](
		func(tb testing.TB, capacity int) storagekit.Mapping[uuid.UUID, string] {
			return storagekit.NewHashMap[uuid.UUID, string](capacity)
		},
		func(tb testing.TB) uuid.UUID {
			return uuid.New()
		},
		func(tb testing.TB) string {
			return randomdata.SillyName()
		},
	))
}

func TestHashMap_zeroValueIsUsable(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	var hm storagekit.HashMap[string, int]
	assert.True(t, hm.IsEmpty())
	assert.False(t, hm.Contains("answer"))
	exp := rnd.Int()
	_, _, err := hm.Insert("answer", exp)
	assert.NoError(t, err)
	got, err := hm.Get("answer")
	assert.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestHashMap_atPointerStaysValidAcrossInserts(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	hm := storagekit.NewHashMap[string, int](0)
	_, _, err := hm.Insert("k", rnd.Int())
	assert.NoError(t, err)
	ptr, err := hm.At("k")
	assert.NoError(t, err)
	for i := 0; i < 100; i++ {
		_, _, err := hm.Insert(rnd.StringNC(8, random.CharsetAlpha()), rnd.Int())
		assert.NoError(t, err)
	}
	exp := rnd.Int()
	*ptr = exp
	got, err := hm.Get("k")
	assert.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestHashMap_Clone(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	og := storagekit.NewHashMap[string, int](2)
	ogVal := rnd.Int()
	_, _, err := og.Insert("a", ogVal)
	assert.NoError(t, err)
	clone := og.Clone()
	assert.Equal(t, og.ToMap(), clone.ToMap())
	_, _, err = clone.Insert("a", random.Unique(rnd.Int, ogVal))
	assert.NoError(t, err)
	got, err := og.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, ogVal, got, "mutating the clone must not affect the original")
}
