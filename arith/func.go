package arith

import (
	"errors"

	"github.com/katalvlaran/ntheory/canon"
)

// ErrNonPositive indicates Eval was called with n ≤ 0; arithmetic
// functions are defined on the positive integers only.
var ErrNonPositive = errors.New("arith: argument must be positive")

// eqProbeLimit bounds the operational-equality probe: Equal compares
// values on 1..eqProbeLimit-1.
const eqProbeLimit = 100

// kind tags the closed set of expression-tree variants. Evaluation is a
// single structural recursion over these tags, so adding a variant forces
// every switch below to be revisited.
type kind int

const (
	kindLeaf      kind = iota // named built-in
	kindDirichlet             // f * g
	kindPointwise             // f ⊙ g
	kindInverse               // f⁻¹ (recursive form)
)

// leafMode selects how a leaf turns per-prime-power contributions into a value.
type leafMode int

const (
	// leafMultiplicative: product of onPrime over the prime powers (1 at the unit).
	leafMultiplicative leafMode = iota

	// leafAdditive: sum of onPrime over the prime powers (0 at the unit).
	leafAdditive

	// leafDirect: evaluate the whole canon (or integer) in one closure.
	leafDirect
)

// Func is one node of an arithmetic-function expression tree.
//
// Funcs are immutable after construction and freely shareable; all state
// below is written exactly once, by the constructors in this package.
type Func struct {
	kind     kind
	category Category
	label    string

	// Leaf payload. onPrime is only ever invoked with p > 1 and k > 0.
	mode    leafMode
	onPrime func(p, k int64) float64
	onCanon func(c *canon.Canon) float64
	onInt   func(n int64) float64 // optional fast path skipping factorization

	// Composite operands (g is nil for kindInverse).
	f, g *Func

	// inv is a closed-form inverse wired by the catalog, when one is known.
	inv *Func
}

// Category returns the classification fixed at construction.
func (f *Func) Category() Category { return f.category }

// IsMultiplicative reports multiplicativity (the completely multiplicative
// case included).
func (f *Func) IsMultiplicative() bool {
	return f.category == Multiplicative || f.category == CompletelyMultiplicative
}

// IsCompletelyMultiplicative reports the unconditional form.
func (f *Func) IsCompletelyMultiplicative() bool {
	return f.category == CompletelyMultiplicative
}

// IsAdditive reports additivity (the completely additive case included).
func (f *Func) IsAdditive() bool {
	return f.category == Additive || f.category == CompletelyAdditive
}

// IsCompletelyAdditive reports the unconditional form.
func (f *Func) IsCompletelyAdditive() bool {
	return f.category == CompletelyAdditive
}

// Label returns the symbolic display label, composed structurally from the
// operands ("φ", "(μ ⊙ N)", "φ⁻¹"). Diagnostic only — not part of the
// evaluation contract.
func (f *Func) Label() string { return f.label }

// String implements fmt.Stringer with the same label.
func (f *Func) String() string { return f.label }

// Eval evaluates the function at the positive integer n.
// Returns ErrNonPositive for n ≤ 0.
func (f *Func) Eval(n int64) (float64, error) {
	if n <= 0 {
		return 0, ErrNonPositive
	}

	return f.evalInt(n), nil
}

// evalInt is the integer path: leaves with a direct integer closure skip
// factorization, pointwise nodes distribute over it, and everything else
// factorizes and delegates to EvalCanon. Callers guarantee n ≥ 1.
func (f *Func) evalInt(n int64) float64 {
	switch {
	case f.kind == kindLeaf && f.onInt != nil:
		return f.onInt(n)
	case f.kind == kindPointwise:
		return f.f.evalInt(n) * f.g.evalInt(n)
	}

	c, _ := canon.Factorize(n) // n ≥ 1, cannot fail

	return f.EvalCanon(c)
}

// EvalCanon evaluates the function at a canonical factorization. This is
// the primitive form every variant defines; it is total.
func (f *Func) EvalCanon(c *canon.Canon) float64 {
	switch f.kind {
	case kindLeaf:
		return f.evalLeaf(c)

	case kindDirichlet:
		// (f * g)(n) = Σ_{d|n} f(d)·g(n/d)
		sum := 0.0
		for _, d := range c.Divisors() {
			q, _ := c.Div(d) // d enumerates divisors of c; always exact
			sum += f.f.EvalCanon(d) * f.g.EvalCanon(q)
		}

		return sum

	case kindPointwise:
		return f.f.EvalCanon(c) * f.g.EvalCanon(c)

	default: // kindInverse
		return f.invert(c, make(map[int64]float64))
	}
}

func (f *Func) evalLeaf(c *canon.Canon) float64 {
	switch f.mode {
	case leafMultiplicative:
		prod := 1.0
		for _, t := range c.PrimePowers() {
			prod *= f.onPrime(t.P, t.K)
		}

		return prod

	case leafAdditive:
		sum := 0.0
		for _, t := range c.PrimePowers() {
			sum += f.onPrime(t.P, t.K)
		}

		return sum

	default: // leafDirect
		return f.onCanon(c)
	}
}

// invert is the recursive Dirichlet inverse of the operand f.f:
//
//	f⁻¹(1) = 1/f(1)
//	f⁻¹(n) = (-1/f(1)) · Σ_{d|n, d<n} f(n/d)·f⁻¹(d)
//
// memo is local to one top-level EvalCanon call; nested inverses of the
// same divisor are computed once.
func (f *Func) invert(c *canon.Canon, memo map[int64]float64) float64 {
	n := c.Int()
	if v, ok := memo[n]; ok {
		return v
	}

	var v float64
	if n == 1 {
		v = 1 / f.f.EvalCanon(c)
	} else {
		sum := 0.0
		for _, d := range c.Divisors() {
			if d.Int() == n {
				continue // proper divisors only
			}
			q, _ := c.Div(d)
			sum += f.f.EvalCanon(q) * f.invert(d, memo)
		}
		v = -1 / f.f.evalInt(1) * sum
	}
	memo[n] = v

	return v
}

// Equal compares operationally: identical instances short-circuit, then
// the two functions must agree on every integer in 1..99. A practical
// approximation, not a symbolic proof.
func (f *Func) Equal(g *Func) bool {
	if f == g {
		return true
	}
	for n := int64(1); n < eqProbeLimit; n++ {
		if f.evalInt(n) != g.evalInt(n) {
			return false
		}
	}

	return true
}
