package primes

// Sieve returns the ascending sequence of all primes ≤ n.
// It returns nil when n < 2.
//
// Classic Sieve of Eratosthenes: composites are struck out starting at p²;
// for odd p the stride is 2p, since the even multiples are already dead
// after the p = 2 pass.
//
// Complexity: O(n log log n) time, O(n) memory.
func Sieve(n int64) []int64 {
	if n < 2 {
		return nil
	}

	composite := make([]bool, n+1)
	for p := int64(2); p*p <= n; p++ {
		if composite[p] {
			continue
		}
		step := 2 * p
		if p == 2 {
			step = p
		}
		for i := p * p; i <= n; i += step {
			composite[i] = true
		}
	}

	out := make([]int64, 0, upperBoundPi(n))
	for i := int64(2); i <= n; i++ {
		if !composite[i] {
			out = append(out, i)
		}
	}

	return out
}

// upperBoundPi is a cheap capacity hint for the survivor slice:
// 2..n holds at most (n+1)/2 odd candidates plus the prime 2.
func upperBoundPi(n int64) int64 {
	return (n+1)/2 + 1
}
