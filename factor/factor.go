package factor

import (
	"errors"
	"math"

	"github.com/katalvlaran/ntheory/primes"
)

// Sentinel errors for factorization inputs.
var (
	// ErrNonPositive indicates an argument that must be positive was ≤ 0.
	ErrNonPositive = errors.New("factor: argument must be positive")

	// ErrBadPrime indicates a divisor base below 2, for which repeated
	// division does not terminate.
	ErrBadPrime = errors.New("factor: base must be an integer >= 2")
)

// PrimePower is one term p^K of a canonical factorization.
type PrimePower struct {
	// P is the prime base.
	P int64

	// K is the exponent of P, always > 0 in a canonical decomposition.
	K int64
}

// Factorize decomposes n into its ascending prime-power terms.
//
// The result is empty exactly when n == 1; every returned term has a prime
// base and a positive exponent. Returns ErrNonPositive for n ≤ 0.
//
// Complexity: O(√n / ln √n) divisions plus the sieve cost of extending the
// shared prime table to √n.
func Factorize(n int64) ([]PrimePower, error) {
	if n <= 0 {
		return nil, ErrNonPositive
	}

	candidates, err := primes.UpTo(isqrt(n))
	if err != nil {
		return nil, err
	}

	var pp []PrimePower
	for _, p := range candidates {
		if p*p > n {
			break
		}
		var k int64
		n, k = divMaxPower(n, p)
		if k > 0 {
			pp = append(pp, PrimePower{P: p, K: k})
		}
	}
	// Whatever survives trial division by all p ≤ √n is prime.
	if n > 1 {
		pp = append(pp, PrimePower{P: n, K: 1})
	}

	return pp, nil
}

// Defactorize returns the integer whose factorization is pp: ∏ pᵏ.
// It is the two-sided inverse of Factorize for every n ≥ 1; the empty
// slice maps to 1.
func Defactorize(pp []PrimePower) int64 {
	prod := int64(1)
	for _, t := range pp {
		for i := int64(0); i < t.K; i++ {
			prod *= t.P
		}
	}

	return prod
}

// PValuation returns the largest k such that p^k divides a.
//
// Returns ErrNonPositive for a ≤ 0 and ErrBadPrime for p < 2 (either would
// make the repeated division spin forever).
func PValuation(a, p int64) (int64, error) {
	if a <= 0 {
		return 0, ErrNonPositive
	}
	if p < 2 {
		return 0, ErrBadPrime
	}
	_, k := divMaxPower(a, p)

	return k, nil
}

// divMaxPower returns (a / p^k, k) where k is the largest exponent of p
// dividing a.
func divMaxPower(a, p int64) (int64, int64) {
	var k int64
	for a%p == 0 {
		k++
		a /= p
	}

	return a, k
}

// isqrt is ⌊√n⌋, with the float estimate nudged back onto the integer lattice.
func isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
