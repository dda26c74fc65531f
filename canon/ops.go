package canon

import "github.com/katalvlaran/ntheory/factor"

// DivisibleBy reports whether d divides the instance exactly: every prime
// of d must appear here with an exponent at least as large.
func (c *Canon) DivisibleBy(d *Canon) bool {
	for _, t := range d.pp {
		if c.Exponent(t.P) < t.K {
			return false
		}
	}

	return true
}

// Mul returns the product: exponents are added over the union of supports.
func (c *Canon) Mul(o *Canon) *Canon {
	pp := make([]factor.PrimePower, 0, len(c.pp)+len(o.pp))
	i, j := 0, 0
	for i < len(c.pp) && j < len(o.pp) {
		switch {
		case c.pp[i].P < o.pp[j].P:
			pp = append(pp, c.pp[i])
			i++
		case c.pp[i].P > o.pp[j].P:
			pp = append(pp, o.pp[j])
			j++
		default:
			pp = append(pp, factor.PrimePower{P: c.pp[i].P, K: c.pp[i].K + o.pp[j].K})
			i, j = i+1, j+1
		}
	}
	pp = append(pp, c.pp[i:]...)
	pp = append(pp, o.pp[j:]...)

	return fromTerms(pp)
}

// Div returns the exact quotient c / o.
// Returns ErrNotDivisible unless o divides c (per DivisibleBy).
func (c *Canon) Div(o *Canon) (*Canon, error) {
	if !c.DivisibleBy(o) {
		return nil, ErrNotDivisible
	}
	pp := make([]factor.PrimePower, 0, len(c.pp))
	for _, t := range c.pp {
		if k := t.K - o.Exponent(t.P); k > 0 {
			pp = append(pp, factor.PrimePower{P: t.P, K: k})
		}
	}

	return fromTerms(pp), nil
}

// Pow returns the k-th power: every exponent is scaled by k.
// k = 0 yields the unit. Returns ErrNegativeExponent for k < 0.
func (c *Canon) Pow(k int64) (*Canon, error) {
	if k < 0 {
		return nil, ErrNegativeExponent
	}
	if k == 0 {
		return fromTerms(nil), nil
	}
	pp := make([]factor.PrimePower, len(c.pp))
	for i, t := range c.pp {
		pp[i] = factor.PrimePower{P: t.P, K: t.K * k}
	}

	return fromTerms(pp), nil
}

// Divisors enumerates every divisor of the instance as a Canon.
//
// The count equals ∏(kᵢ+1) over the prime factors. Enumeration runs an
// odometer over the exponent ranges, first base varying fastest, so the
// order is deterministic but not numerically sorted. The unit has exactly
// one divisor: itself.
func (c *Canon) Divisors() []*Canon {
	count := 1
	for _, t := range c.pp {
		count *= int(t.K) + 1
	}

	out := make([]*Canon, 0, count)
	exps := make([]int64, len(c.pp))
	for {
		var pp []factor.PrimePower
		for i, t := range c.pp {
			if exps[i] > 0 {
				pp = append(pp, factor.PrimePower{P: t.P, K: exps[i]})
			}
		}
		out = append(out, fromTerms(pp))

		// Odometer step over the exponent ranges.
		i := 0
		for ; i < len(exps); i++ {
			if exps[i] < c.pp[i].K {
				exps[i]++
				break
			}
			exps[i] = 0
		}
		if i == len(exps) {
			break
		}
	}

	return out
}

// Cmp compares by represented integer value: -1, 0 or +1.
func (c *Canon) Cmp(o *Canon) int {
	a, b := c.Int(), o.Int()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports c < o by integer value.
func (c *Canon) Less(o *Canon) bool { return c.Cmp(o) < 0 }

// Equal reports whether both instances represent the same integer.
func (c *Canon) Equal(o *Canon) bool { return o != nil && c.Int() == o.Int() }

// GCD returns the greatest common divisor: the minimum exponent at every
// prime of the shared support.
func GCD(a, b *Canon) *Canon {
	var pp []factor.PrimePower
	for _, t := range a.pp {
		if k := min(t.K, b.Exponent(t.P)); k > 0 {
			pp = append(pp, factor.PrimePower{P: t.P, K: k})
		}
	}

	return fromTerms(pp)
}

// LCM returns the least common multiple: the maximum exponent at every
// prime of the union support.
func LCM(a, b *Canon) *Canon {
	pp := make([]factor.PrimePower, 0, len(a.pp)+len(b.pp))
	i, j := 0, 0
	for i < len(a.pp) && j < len(b.pp) {
		switch {
		case a.pp[i].P < b.pp[j].P:
			pp = append(pp, a.pp[i])
			i++
		case a.pp[i].P > b.pp[j].P:
			pp = append(pp, b.pp[j])
			j++
		default:
			pp = append(pp, factor.PrimePower{P: a.pp[i].P, K: max(a.pp[i].K, b.pp[j].K)})
			i, j = i+1, j+1
		}
	}
	pp = append(pp, a.pp[i:]...)
	pp = append(pp, b.pp[j:]...)

	return fromTerms(pp)
}
