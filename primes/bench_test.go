package primes_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ntheory/primes"
)

// BenchmarkSieve measures the raw sieve at growing bounds.
func BenchmarkSieve(b *testing.B) {
	for _, n := range []int64{1_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = primes.Sieve(n)
			}
		})
	}
}

// BenchmarkTable_IsPrime_Warm measures lookups once the cache is hot.
func BenchmarkTable_IsPrime_Warm(b *testing.B) {
	t := primes.NewTable()
	if err := t.Extend(1_000_000); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.IsPrime(999_983)
	}
}
