package arith

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ntheory/canon"
)

// ErrBadExponent indicates DivisorPowerSum was called with m ≤ 0.
var ErrBadExponent = errors.New("arith: divisor power must be positive")

// The built-in catalog. Each entry is a single shared instance; categories
// and per-prime-power rules follow the classical definitions.
var (
	// LittleOmega is ω, the number of distinct prime factors. Additive:
	// ω(p^k) = 1.
	LittleOmega = additiveLeaf("ω", Additive, func(_, _ int64) float64 { return 1 })

	// BigOmega is Ω, the number of prime factors with multiplicity.
	// Completely additive: Ω(p^k) = k.
	BigOmega = additiveLeaf("Ω", CompletelyAdditive, func(_, k int64) float64 { return float64(k) })

	// Totient is Euler's φ. Multiplicative: φ(p^k) = p^(k-1)·(p-1).
	Totient = multiplicativeLeaf("φ", Multiplicative, func(p, k int64) float64 {
		return fpow(float64(p), k-1) * float64(p-1)
	})

	// TotientInverse is the Dirichlet inverse of φ. Multiplicative:
	// φ⁻¹(p^k) = 1 - p.
	TotientInverse = multiplicativeLeaf("φ⁻¹", Multiplicative, func(p, _ int64) float64 {
		return float64(1 - p)
	})

	// Mobius is μ. Multiplicative: μ(p) = -1, μ(p^k) = 0 for k > 1.
	Mobius = multiplicativeLeaf("μ", Multiplicative, func(_, k int64) float64 {
		if k > 1 {
			return 0
		}

		return -1
	})

	// DivisorCount is d, the number of divisors. Multiplicative:
	// d(p^k) = k + 1.
	DivisorCount = multiplicativeLeaf("d", Multiplicative, func(_, k int64) float64 {
		return float64(k + 1)
	})

	// Sigma is σ = σ₁, the sum of divisors.
	Sigma, _ = DivisorPowerSum(1)

	// Liouville is λ. Completely multiplicative: λ(p^k) = (-1)^k.
	Liouville = multiplicativeLeaf("λ", CompletelyMultiplicative, func(_, k int64) float64 {
		if k%2 != 0 {
			return -1
		}

		return 1
	})

	// Mangoldt is Λ: ln p on prime powers p^k, 0 elsewhere. Neither
	// multiplicative nor additive, so it bypasses the prime-power
	// decomposition entirely.
	Mangoldt = directLeaf("Λ", Neither, func(c *canon.Canon) float64 {
		if c.IsPrimePower() {
			return math.Log(float64(c.Primes()[0]))
		}

		return 0
	}, nil)

	// Identity is I, the neutral element of the Dirichlet product:
	// I(1) = 1, I(n) = 0 for n > 1. Completely multiplicative.
	Identity = directLeaf("I", CompletelyMultiplicative,
		func(c *canon.Canon) float64 {
			if c.IsUnit() {
				return 1
			}

			return 0
		},
		func(n int64) float64 {
			if n == 1 {
				return 1
			}

			return 0
		})

	// Unit is u, constantly 1. Completely multiplicative; its Dirichlet
	// inverse is μ.
	Unit = directLeaf("u", CompletelyMultiplicative,
		func(*canon.Canon) float64 { return 1 },
		func(int64) float64 { return 1 })

	// N is the identity map n ↦ n, the k = 1 instance of PowerOf.
	N = PowerOf(1)
)

// init wires the closed-form inverse pairs; done here rather than in the
// var block to keep the cross-references out of initializer dependency
// cycles.
func init() {
	Totient.inv = TotientInverse
	TotientInverse.inv = Totient
	Mobius.inv = Unit
	Unit.inv = Mobius
	Identity.inv = Identity
	DivisorCount.inv = Mobius.Mul(Mobius) // d = u * u, so d⁻¹ = μ * μ
}

// PowerOf returns the completely multiplicative function n ↦ n^k.
// Both evaluation paths are direct: the integer path never factorizes,
// and the canonical path reconstructs the integer once.
func PowerOf(k int64) *Func {
	label := "N"
	if k != 1 {
		label = fmt.Sprintf("N^%d", k)
	}

	return &Func{
		kind:     kindLeaf,
		mode:     leafDirect,
		category: CompletelyMultiplicative,
		label:    label,
		onCanon:  func(c *canon.Canon) float64 { return fpow(float64(c.Int()), k) },
		onInt:    func(n int64) float64 { return fpow(float64(n), k) },
	}
}

// DivisorPowerSum returns σ_m, the sum of the m-th powers of the divisors.
// Multiplicative: σ_m(p^k) = 1 + p^m + ... + (p^m)^k. Requires m ≥ 1
// (σ₀ is DivisorCount); returns ErrBadExponent otherwise.
func DivisorPowerSum(m int64) (*Func, error) {
	if m <= 0 {
		return nil, ErrBadExponent
	}

	label := "σ"
	if m != 1 {
		label = fmt.Sprintf("σ_%d", m)
	}
	f := multiplicativeLeaf(label, Multiplicative, func(p, k int64) float64 {
		pm := fpow(float64(p), m)
		sum, term := 0.0, 1.0
		for i := int64(0); i <= k; i++ {
			sum += term
			term *= pm
		}

		return sum
	})
	// σ_m = N^m * u, hence σ_m⁻¹ = (μ ⊙ N^m) * μ.
	f.inv = Mobius.Pointwise(PowerOf(m)).Mul(Mobius)

	return f, nil
}

// Divisors returns the integer values of every divisor of n, in the
// enumeration order of canon.Divisors. Returns factor.ErrNonPositive for
// n ≤ 0.
func Divisors(n int64) ([]int64, error) {
	c, err := canon.Factorize(n)
	if err != nil {
		return nil, err
	}

	divs := c.Divisors()
	out := make([]int64, len(divs))
	for i, d := range divs {
		out[i] = d.Int()
	}

	return out, nil
}

// multiplicativeLeaf builds a leaf whose value is the product of onPrime
// over the prime powers of the argument (1 at the unit).
func multiplicativeLeaf(label string, cat Category, onPrime func(p, k int64) float64) *Func {
	return &Func{kind: kindLeaf, mode: leafMultiplicative, category: cat, label: label, onPrime: onPrime}
}

// additiveLeaf builds a leaf whose value is the sum of onPrime over the
// prime powers of the argument (0 at the unit).
func additiveLeaf(label string, cat Category, onPrime func(p, k int64) float64) *Func {
	return &Func{kind: kindLeaf, mode: leafAdditive, category: cat, label: label, onPrime: onPrime}
}

// directLeaf builds a leaf evaluated by whole-argument closures; onInt may
// be nil when no integer fast path exists.
func directLeaf(label string, cat Category, onCanon func(*canon.Canon) float64, onInt func(int64) float64) *Func {
	return &Func{kind: kindLeaf, mode: leafDirect, category: cat, label: label, onCanon: onCanon, onInt: onInt}
}

// fpow is x^k by repeated multiplication, exact for integer-valued x with
// results below 2^53; negative k takes the reciprocal.
func fpow(x float64, k int64) float64 {
	if k < 0 {
		return 1 / fpow(x, -k)
	}
	out := 1.0
	for i := int64(0); i < k; i++ {
		out *= x
	}

	return out
}
