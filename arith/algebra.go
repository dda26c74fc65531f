package arith

// Mul returns the Dirichlet product f * g.
//
// Category: completely multiplicative if both operands are; else
// multiplicative if both operands are; else neither. Additivity does not
// survive convolution. Identity, the neutral element, short-circuits.
func (f *Func) Mul(g *Func) *Func {
	if f == Identity {
		return g
	}
	if g == Identity {
		return f
	}

	cat := Neither
	switch {
	case f.IsCompletelyMultiplicative() && g.IsCompletelyMultiplicative():
		cat = CompletelyMultiplicative
	case f.IsMultiplicative() && g.IsMultiplicative():
		cat = Multiplicative
	}

	return &Func{
		kind:     kindDirichlet,
		category: cat,
		label:    "(" + f.label + " * " + g.label + ")",
		f:        f,
		g:        g,
	}
}

// Pointwise returns the pointwise product (f ⊙ g)(n) = f(n)·g(n).
//
// Its category is always Neither, regardless of the operands — a fixed
// conservative choice.
func (f *Func) Pointwise(g *Func) *Func {
	return &Func{
		kind:     kindPointwise,
		category: Neither,
		label:    "(" + f.label + " ⊙ " + g.label + ")",
		f:        f,
		g:        g,
	}
}

// Inverse returns the Dirichlet inverse f⁻¹, the function with f * f⁻¹ = I.
//
// Requires f(1) ≠ 0, which holds for the whole multiplicative catalog.
// Closed forms are preferred over the recursive node: the inverse of an
// inverse is the original, catalog leaves carry hand-wired inverses
// (φ ↔ φ⁻¹, μ ↔ u, I ↔ I, d → μ*μ, σ_m → (μ⊙N^m)*μ), a Dirichlet
// product inverts operand-wise, and a completely multiplicative f has
// f⁻¹ = μ ⊙ f. Only the remainder falls back to the recursion.
func (f *Func) Inverse() *Func {
	switch {
	case f.kind == kindInverse:
		return f.f
	case f.inv != nil:
		return f.inv
	case f.kind == kindDirichlet:
		return f.f.Inverse().Mul(f.g.Inverse())
	case f.IsCompletelyMultiplicative():
		return Mobius.Pointwise(f)
	}

	cat := Neither
	if f.IsMultiplicative() {
		cat = Multiplicative
	}

	return &Func{
		kind:     kindInverse,
		category: cat,
		label:    f.label + "⁻¹",
		f:        f,
	}
}

// Power returns the k-fold Dirichlet product of f with itself, seeded with
// Identity: f.Power(0) == Identity for every f. Negative k convolves the
// inverse -k times instead.
func (f *Func) Power(k int) *Func {
	base := f
	if k < 0 {
		base = f.Inverse()
		k = -k
	}

	out := Identity
	for i := 0; i < k; i++ {
		out = out.Mul(base)
	}

	return out
}
