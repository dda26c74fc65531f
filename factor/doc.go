// Package factor converts integers to and from their canonical
// prime-power decomposition.
//
// 🚀 What is factor?
//
//	The low-level factorization engine:
//	  • Factorize(n)   — n as an ascending []PrimePower (empty for n = 1)
//	  • Defactorize(pp) — the product ∏ pᵏ, inverse of Factorize
//	  • PValuation(a,p) — the largest k with pᵏ | a
//
//	See package canon for the high-level value type built on top of it.
//
// Algorithm:
//
//	Trial division by the ascending primes p ≤ √n, drawn from the shared
//	prime table in package primes (which auto-extends on demand); the loop
//	stops early once p² > n, at which point any residual n > 1 is itself
//	prime and is recorded with exponent 1.
//
// The prime table auto-extends, but not incrementally — each extension is a
// full re-sieve. When factorizing in bulk, extend once up front:
//
//	primes.Extend(1000) // enough for every n ≤ 1_000_000
//	for n := int64(1); n <= 1_000_000; n++ { ... }
//
// Errors (sentinel):
//
//	– ErrNonPositive if Factorize or PValuation receives n ≤ 0.
//	– ErrBadPrime    if PValuation receives p < 2.
package factor
