package rsort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmv/core"
	"github.com/katalvlaran/spmv/rsort"
)

func BenchmarkRadixSortByField(b *testing.B) {
	const n = 1 << 16
	rng := rand.New(rand.NewSource(7))
	base := make([]rsort.Item[int], n)
	for i := range base {
		base[i] = rsort.Item[int]{FieldVal: rng.Intn(n), Payload: i}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		items := make([]rsort.Item[int], len(base))
		copy(items, base)
		_ = rsort.RadixSortByField(items, n)
	}
}

func BenchmarkCountingSort_SinglePass(b *testing.B) {
	const n = 1 << 16
	radix := rsort.Radix(n)
	rng := rand.New(rand.NewSource(7))
	base := make([]rsort.Item[int], n)
	for i := range base {
		base[i] = rsort.Item[int]{FieldVal: rng.Intn(n), Payload: i}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rsort.CountingSort(base, radix, core.MOD)
	}
}
