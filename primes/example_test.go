package primes_test

import (
	"fmt"

	"github.com/katalvlaran/ntheory/primes"
)

// ExampleSieve lists every prime up to 30.
func ExampleSieve() {
	fmt.Println(primes.Sieve(30))
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

// ExampleTable demonstrates auto-extension, π(x) and membership on one table.
func ExampleTable() {
	t := primes.NewTable()

	ps, _ := t.UpTo(10)
	fmt.Println(ps)
	fmt.Println(t.Count(10))
	fmt.Println(t.IsPrime(7))
	// Output:
	// [2 3 5 7]
	// 4
	// true
}
