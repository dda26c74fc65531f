package factor_test

import (
	"fmt"

	"github.com/katalvlaran/ntheory/factor"
)

// ExampleFactorize decomposes 72 = 2³·3².
func ExampleFactorize() {
	pp, _ := factor.Factorize(72)
	for _, term := range pp {
		fmt.Printf("%d^%d\n", term.P, term.K)
	}
	fmt.Println(factor.Defactorize(pp))
	// Output:
	// 2^3
	// 3^2
	// 72
}
