// Package ntheory is your in-memory playground for elementary number
// theory — prime tables, canonical factorizations, and the algebra of
// arithmetic functions under Dirichlet convolution.
//
// 🚀 What is ntheory?
//
//	A compact, thread-safe, pure-Go library that brings together:
//		• Prime tables: a growable, mutex-guarded Sieve of Eratosthenes cache
//		• Factorization: trial division into canonical prime-power form
//		• Canon: an immutable value type for prime-power decompositions
//		• Arithmetic functions: φ, μ, σ, d, ω, Ω, λ, Λ and friends
//		• An algebra over them: Dirichlet product, pointwise product,
//		  Dirichlet inverse, and integer powers
//
// ✨ Why choose ntheory?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – guarded shared state, in-code docs
//   - Pure algorithmic core – no cgo, no hidden machinery
//   - Composable – build new arithmetic functions from old ones with
//     Mul, Pointwise, Inverse and Power
//
// Under the hood, everything is organized under four subpackages:
//
//	primes/ — sieve + growable prime table (π, membership, reset lifecycle)
//	factor/ — Factorize / Defactorize / PValuation
//	canon/  — canonical prime-power numbers: divisors, exact arithmetic, GCD/LCM
//	arith/  — arithmetic-function algebra and the built-in catalog
//
// Quick taste:
//
//	c, _ := canon.Factorize(72)     // 2^3·3^2
//	fmt.Println(len(c.Divisors()))  // 12 divisors
//	v, _ := arith.Totient.Eval(10)  // 4
//	inv := arith.Totient.Inverse()  // φ⁻¹
//	arith.Totient.Mul(inv).Equal(arith.Identity) // true
//
// Dive into each subpackage's doc.go for full contracts, complexity notes
// and examples.
//
//	go get github.com/katalvlaran/ntheory
package ntheory
