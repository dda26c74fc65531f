package arith

// Category classifies an arithmetic function by how it distributes over
// coprime (or arbitrary) products. Every Func carries exactly one Category,
// fixed at construction; "completely multiplicative" implies multiplicative
// through the derived predicates, never as a second flag (likewise for
// additive).
type Category int

const (
	// Neither marks functions that are neither multiplicative nor additive.
	Neither Category = iota

	// Multiplicative: f(mn) = f(m)·f(n) whenever gcd(m,n) = 1.
	Multiplicative

	// CompletelyMultiplicative: f(mn) = f(m)·f(n) for all m, n.
	CompletelyMultiplicative

	// Additive: f(mn) = f(m)+f(n) whenever gcd(m,n) = 1.
	Additive

	// CompletelyAdditive: f(mn) = f(m)+f(n) for all m, n.
	CompletelyAdditive
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case Multiplicative:
		return "multiplicative"
	case CompletelyMultiplicative:
		return "completely multiplicative"
	case Additive:
		return "additive"
	case CompletelyAdditive:
		return "completely additive"
	default:
		return "neither"
	}
}
