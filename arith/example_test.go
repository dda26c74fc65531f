package arith_test

import (
	"fmt"

	"github.com/katalvlaran/ntheory/arith"
)

// ExampleFunc_Eval evaluates a few catalog functions directly.
func ExampleFunc_Eval() {
	phi, _ := arith.Totient.Eval(10)
	mu, _ := arith.Mobius.Eval(10)
	sigma, _ := arith.Sigma.Eval(6)

	fmt.Println(phi, mu, sigma)
	// Output: 4 -1 12
}

// ExampleFunc_Mul builds the Möbius-inversion identity μ * u = I.
func ExampleFunc_Mul() {
	f := arith.Mobius.Mul(arith.Unit)

	fmt.Println(f.Label())
	fmt.Println(f.Equal(arith.Identity))
	// Output:
	// (μ * u)
	// true
}

// ExampleFunc_Inverse shows the totient pair φ * φ⁻¹ = I.
func ExampleFunc_Inverse() {
	inv := arith.Totient.Inverse()

	fmt.Println(inv.Label())
	fmt.Println(arith.Totient.Mul(inv).Equal(arith.Identity))
	// Output:
	// φ⁻¹
	// true
}
