package canon

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/ntheory/factor"
)

// Sentinel errors for canonical arithmetic.
var (
	// ErrNotDivisible indicates an exact division was requested on a pair
	// where the divisor does not divide the dividend.
	ErrNotDivisible = errors.New("canon: not divisible")

	// ErrNegativeExponent indicates Pow was called with k < 0; canonical
	// form cannot represent fractions.
	ErrNegativeExponent = errors.New("canon: exponent must be non-negative")
)

// Canon is a positive integer in canonical prime-power form.
//
// The zero value represents 1. Canons are immutable after construction;
// every operation returns a fresh instance.
type Canon struct {
	pp []factor.PrimePower // ascending bases, positive exponents

	once sync.Once
	val  int64
}

// New builds a Canon from an arbitrary, possibly unnormalized mapping.
// Entries with base ≤ 1 or exponent ≤ 0 are dropped; bases are sorted.
func New(primePowers map[int64]int64) *Canon {
	pp := make([]factor.PrimePower, 0, len(primePowers))
	for p, k := range primePowers {
		if p > 1 && k > 0 {
			pp = append(pp, factor.PrimePower{P: p, K: k})
		}
	}
	sort.Slice(pp, func(i, j int) bool { return pp[i].P < pp[j].P })

	return &Canon{pp: pp}
}

// Factorize returns the canonical form of n.
// Returns factor.ErrNonPositive for n ≤ 0.
func Factorize(n int64) (*Canon, error) {
	pp, err := factor.Factorize(n)
	if err != nil {
		return nil, err
	}
	c := &Canon{pp: pp}
	// The source integer is already known; no need to reconstruct it later.
	c.once.Do(func() { c.val = n })

	return c, nil
}

// fromTerms wraps an already-normalized term slice. Internal constructors
// must hand over ownership of pp.
func fromTerms(pp []factor.PrimePower) *Canon {
	return &Canon{pp: pp}
}

// Int returns the represented integer, reconstructing it on first use and
// caching the result for the life of the instance.
func (c *Canon) Int() int64 {
	c.once.Do(func() { c.val = factor.Defactorize(c.pp) })

	return c.val
}

// Exponent returns the exponent of p in the decomposition, or 0 when p is
// absent. It never fails.
func (c *Canon) Exponent(p int64) int64 {
	i := sort.Search(len(c.pp), func(i int) bool { return c.pp[i].P >= p })
	if i < len(c.pp) && c.pp[i].P == p {
		return c.pp[i].K
	}

	return 0
}

// Contains reports whether p occurs in the decomposition.
func (c *Canon) Contains(p int64) bool {
	return c.Exponent(p) > 0
}

// Primes returns the ascending prime bases.
func (c *Canon) Primes() []int64 {
	out := make([]int64, len(c.pp))
	for i, t := range c.pp {
		out[i] = t.P
	}

	return out
}

// Exponents returns the exponents in the same order as Primes.
func (c *Canon) Exponents() []int64 {
	out := make([]int64, len(c.pp))
	for i, t := range c.pp {
		out[i] = t.K
	}

	return out
}

// PrimePowers returns the (prime, exponent) terms in ascending base order.
func (c *Canon) PrimePowers() []factor.PrimePower {
	out := make([]factor.PrimePower, len(c.pp))
	copy(out, c.pp)

	return out
}

// IsUnit reports whether the instance represents 1.
func (c *Canon) IsUnit() bool { return len(c.pp) == 0 }

// IsPrimePower reports whether the instance is p^k for a single prime p.
func (c *Canon) IsPrimePower() bool { return len(c.pp) == 1 }

// IsPrime reports whether the instance is a prime.
func (c *Canon) IsPrime() bool { return len(c.pp) == 1 && c.pp[0].K == 1 }

// IsComposite reports whether the instance is neither 1 nor a prime.
func (c *Canon) IsComposite() bool { return !c.IsUnit() && !c.IsPrime() }

// String renders the decomposition as "2^3·3^2" ("1" for the unit).
func (c *Canon) String() string {
	if c.IsUnit() {
		return "1"
	}
	var b strings.Builder
	for i, t := range c.pp {
		if i > 0 {
			b.WriteRune('·')
		}
		b.WriteString(strconv.FormatInt(t.P, 10))
		if t.K > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.FormatInt(t.K, 10))
		}
	}

	return b.String()
}
