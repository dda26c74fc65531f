package arith_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ntheory/arith"
	"github.com/katalvlaran/ntheory/canon"
	"github.com/katalvlaran/ntheory/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAt evaluates f at n, failing the test on error.
func evalAt(t *testing.T, f *arith.Func, n int64) float64 {
	t.Helper()
	v, err := f.Eval(n)
	require.NoError(t, err, "%s(%d)", f, n)

	return v
}

// assertValues compares f against a value table starting at n = 1.
func assertValues(t *testing.T, f *arith.Func, want []float64) {
	t.Helper()
	for i, w := range want {
		n := int64(i) + 1
		assert.Equal(t, w, evalAt(t, f, n), "%s(%d)", f, n)
	}
}

func TestTotient_Values(t *testing.T) {
	assertValues(t, arith.Totient, []float64{1, 1, 2, 2, 4, 2, 6, 4, 6, 4})
}

func TestMobius_Values(t *testing.T) {
	assertValues(t, arith.Mobius, []float64{1, -1, -1, 0, -1, 1, -1, 0, 0, 1})
}

func TestDivisorCount_Values(t *testing.T) {
	assertValues(t, arith.DivisorCount, []float64{1, 2, 2, 3, 2, 4, 2, 4, 3, 4})
}

func TestSigma_Values(t *testing.T) {
	assert.Equal(t, 12.0, evalAt(t, arith.Sigma, 6), "σ(6) = 1+2+3+6")
	assertValues(t, arith.Sigma, []float64{1, 3, 4, 7, 6, 12, 8, 15, 13, 18})
}

func TestOmega_Values(t *testing.T) {
	assert.Equal(t, 0.0, evalAt(t, arith.LittleOmega, 1), "the unit has no prime factors")
	assert.Equal(t, 3.0, evalAt(t, arith.LittleOmega, 30), "ω(2·3·5)")
	assert.Equal(t, 3.0, evalAt(t, arith.LittleOmega, 4*27*625), "ω ignores multiplicity")

	assert.Equal(t, 0.0, evalAt(t, arith.BigOmega, 1))
	assert.Equal(t, 3.0, evalAt(t, arith.BigOmega, 12), "Ω(2^2·3)")
	assert.Equal(t, 9.0, evalAt(t, arith.BigOmega, 4*27*625), "Ω counts multiplicity: 2+3+4")
}

func TestLiouville_Values(t *testing.T) {
	assertValues(t, arith.Liouville, []float64{1, -1, -1, 1, -1, 1, -1, -1, 1, 1})
}

func TestMangoldt_Values(t *testing.T) {
	assert.Equal(t, 0.0, evalAt(t, arith.Mangoldt, 1))
	assert.Equal(t, math.Log(2), evalAt(t, arith.Mangoldt, 8), "Λ(2^3) = ln 2")
	assert.Equal(t, math.Log(7), evalAt(t, arith.Mangoldt, 7))
	assert.Equal(t, 0.0, evalAt(t, arith.Mangoldt, 6), "Λ vanishes off prime powers")
}

func TestIdentityAndUnit_Values(t *testing.T) {
	assert.Equal(t, 1.0, evalAt(t, arith.Identity, 1))
	for n := int64(2); n < 100; n++ {
		assert.Equal(t, 0.0, evalAt(t, arith.Identity, n), "I(%d)", n)
		assert.Equal(t, 1.0, evalAt(t, arith.Unit, n), "u(%d)", n)
	}
}

func TestN_Values(t *testing.T) {
	for n := int64(1); n < 100; n++ {
		assert.Equal(t, float64(n), evalAt(t, arith.N, n), "N(%d)", n)
	}
	cube := arith.PowerOf(3)
	assert.Equal(t, 27.0, evalAt(t, cube, 3))
	assert.Equal(t, 0.25, evalAt(t, arith.PowerOf(-2), 2), "negative powers take reciprocals")
}

func TestDivisorPowerSum(t *testing.T) {
	sigma2, err := arith.DivisorPowerSum(2)
	require.NoError(t, err)
	assert.Equal(t, 21.0, evalAt(t, sigma2, 4), "σ₂(4) = 1+4+16")
	assert.Equal(t, "σ_2", sigma2.Label())

	_, err = arith.DivisorPowerSum(0)
	assert.ErrorIs(t, err, arith.ErrBadExponent)
	_, err = arith.DivisorPowerSum(-3)
	assert.ErrorIs(t, err, arith.ErrBadExponent)
}

// TestEval_NonPositive rejects n <= 0 on every catalog entry.
func TestEval_NonPositive(t *testing.T) {
	for _, f := range []*arith.Func{
		arith.Totient, arith.Mobius, arith.Identity, arith.Unit, arith.N, arith.Mangoldt,
	} {
		_, err := f.Eval(0)
		assert.ErrorIs(t, err, arith.ErrNonPositive, "%s(0)", f)
		_, err = f.Eval(-5)
		assert.ErrorIs(t, err, arith.ErrNonPositive, "%s(-5)", f)
	}
}

// TestEvalCanon_AgreesWithEval: the canonical path is the primitive the
// integer path delegates to.
func TestEvalCanon_AgreesWithEval(t *testing.T) {
	for _, f := range []*arith.Func{arith.Totient, arith.Mobius, arith.Sigma, arith.BigOmega, arith.N} {
		for n := int64(1); n <= 50; n++ {
			c, err := canon.Factorize(n)
			require.NoError(t, err)
			assert.Equal(t, evalAt(t, f, n), f.EvalCanon(c), "%s at %d", f, n)
		}
	}
}

// TestCategories verifies the catalog's classification and the derived
// predicates.
func TestCategories(t *testing.T) {
	assert.Equal(t, arith.Multiplicative, arith.Totient.Category())
	assert.True(t, arith.Totient.IsMultiplicative())
	assert.False(t, arith.Totient.IsCompletelyMultiplicative())

	assert.True(t, arith.Liouville.IsCompletelyMultiplicative())
	assert.True(t, arith.Liouville.IsMultiplicative(), "completely multiplicative implies multiplicative")

	assert.Equal(t, arith.Additive, arith.LittleOmega.Category())
	assert.True(t, arith.BigOmega.IsCompletelyAdditive())
	assert.True(t, arith.BigOmega.IsAdditive())
	assert.False(t, arith.BigOmega.IsMultiplicative())

	assert.Equal(t, arith.Neither, arith.Mangoldt.Category())
	assert.False(t, arith.Mangoldt.IsMultiplicative())
	assert.False(t, arith.Mangoldt.IsAdditive())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "multiplicative", arith.Multiplicative.String())
	assert.Equal(t, "completely multiplicative", arith.CompletelyMultiplicative.String())
	assert.Equal(t, "additive", arith.Additive.String())
	assert.Equal(t, "completely additive", arith.CompletelyAdditive.String())
	assert.Equal(t, "neither", arith.Neither.String())
}

// TestDivisors checks the integer-level divisor helper, including the
// d(n) = len(divisors(n)) identity on [1,200].
func TestDivisors(t *testing.T) {
	got, err := arith.Divisors(12)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 6, 12}, got)

	_, err = arith.Divisors(0)
	assert.ErrorIs(t, err, factor.ErrNonPositive)

	for n := int64(1); n <= 200; n++ {
		ds, err := arith.Divisors(n)
		require.NoError(t, err)
		assert.Equal(t, float64(len(ds)), evalAt(t, arith.DivisorCount, n), "d(%d)", n)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "φ", arith.Totient.Label())
	assert.Equal(t, "μ", arith.Mobius.String())
	assert.Equal(t, "Ω", arith.BigOmega.Label())
	assert.Equal(t, "σ", arith.Sigma.Label())
	assert.Equal(t, "N", arith.N.Label())
	assert.Equal(t, "N^3", arith.PowerOf(3).Label())
	assert.Equal(t, "(φ * μ)", arith.Totient.Mul(arith.Mobius).Label())
	assert.Equal(t, "(μ ⊙ N)", arith.Mobius.Pointwise(arith.N).Label())
}
