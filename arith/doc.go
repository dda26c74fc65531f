// Package arith implements arithmetic functions over the positive
// integers and the algebra that composes them.
//
// 🚀 What is arith?
//
//	A Func is a total function from positive integers (equivalently, from
//	canonical factorizations) to real numbers, tagged with exactly one
//	Category: multiplicative, completely multiplicative, additive,
//	completely additive, or neither. Funcs compose into expression trees:
//	  • f.Mul(g)       — Dirichlet product (f*g)(n) = Σ_{d|n} f(d)·g(n/d)
//	  • f.Pointwise(g) — ordinary product (f⊙g)(n) = f(n)·g(n)
//	  • f.Inverse()    — Dirichlet inverse, f * f⁻¹ = I
//	  • f.Power(k)     — k-fold Dirichlet product (negative k inverts first)
//
//	The built-in catalog covers the classical functions: Totient (φ),
//	Mobius (μ), DivisorCount (d), Sigma (σ) and DivisorPowerSum (σ_m),
//	LittleOmega (ω), BigOmega (Ω), Liouville (λ), Mangoldt (Λ),
//	Identity (I, the Dirichlet neutral element), Unit (u) and N (= n).
//
// Evaluation contract:
//
//	EvalCanon is the primitive every node defines; Eval(n) validates n ≥ 1,
//	then factorizes and delegates — unless the node carries a direct
//	integer path (Identity, Unit, N^k) that skips factorization outright.
//	Integer evaluation cost is therefore dominated by factorization cost.
//
// Categories are derived structurally once, at construction:
//
//	– Dirichlet product: completely multiplicative if both operands are,
//	  else multiplicative if both operands are; additivity never propagates.
//	– Pointwise product: always neither (a conservative fixed choice).
//	– Dirichlet inverse: multiplicative iff the operand is.
//
// Inverse precondition:
//
//	f.Inverse() requires f(1) ≠ 0, which holds for the whole multiplicative
//	catalog. Completely multiplicative f takes the closed form
//	f⁻¹ = μ ⊙ f; everything else gets the recursive inverse
//	f⁻¹(n) = (-1/f(1)) · Σ_{d|n, d<n} f(n/d)·f⁻¹(d), memoized per call.
//
// Equality:
//
//	Equal compares two Funcs operationally on the probe range 1..99 (with
//	an identical-instance short-circuit). It is a practical approximation,
//	not a symbolic proof — do not rely on it beyond the probe range.
//
// Errors (sentinel):
//
//	– ErrNonPositive if Eval receives n ≤ 0.
//	– ErrBadExponent if DivisorPowerSum receives m ≤ 0.
//
// Example:
//
//	v, _ := arith.Totient.Eval(10)                        // 4
//	arith.Totient.Mul(arith.Totient.Inverse()).
//		Equal(arith.Identity)                             // true
//	arith.Mobius.Mul(arith.Unit).Equal(arith.Identity)    // μ * u = I
package arith
