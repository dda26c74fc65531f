// Package canon represents positive integers by their canonical
// prime-power decomposition.
//
// 🚀 What is canon?
//
//	A Canon is an immutable value holding the mapping prime → exponent of
//	a positive integer, normalized (bases > 1, exponents > 0, ascending)
//	at construction. 1 is the empty mapping. On top of that shape it
//	offers the arithmetic that stays exact in factored form:
//	  • Mul / Div / Pow    — add, subtract, scale exponents
//	  • Divisors()         — all ∏(kᵢ+1) divisors, each again a Canon
//	  • GCD / LCM          — min / max of exponents
//	  • IsUnit / IsPrime / IsPrimePower / IsComposite
//	  • Cmp / Equal / Less — total order by represented integer value
//
// Two Canons are equal exactly when they represent the same integer; after
// normalization that coincides with structural equality of the mappings.
// The integer value is reconstructed lazily, once per instance, and cached
// behind a sync.Once, so Canons are freely shareable across goroutines.
//
// Errors (sentinel):
//
//	– ErrNotDivisible     if Div is called on a pair that does not divide exactly.
//	– ErrNegativeExponent if Pow receives k < 0.
//
// Example:
//
//	a, _ := canon.Factorize(18) // 2·3^2
//	b, _ := canon.Factorize(6)  // 2·3
//	q, _ := a.Div(b)            // 3
//	fmt.Println(q.Int())        // 3
package canon
