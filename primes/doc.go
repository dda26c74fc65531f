// Package primes maintains growable tables of prime numbers backed by the
// Sieve of Eratosthenes.
//
// 🚀 What is primes?
//
//	A Table caches the ascending sequence of every prime ≤ its current
//	limit (the watermark). Any query that needs primes beyond the
//	watermark transparently re-sieves up to the requested bound, so
//	callers never manage the cache by hand:
//	  • UpTo(n)    — all primes ≤ n
//	  • Count(x)   — the prime-counting function π(x)
//	  • IsPrime(n) — membership by binary search
//	  • Extend(n)  — grow the watermark explicitly
//	  • Reset()    — drop the cache back to the empty, zero-watermark state
//
// Extension is deliberately not incremental: growing past the watermark
// recomputes the full sieve from scratch in O(n log log n). For bulk
// workloads, Extend once to the largest bound you will need:
//
//	primes.Extend(1000) // enough to factorize every n ≤ 1_000_000
//
// Concurrency:
//
//	Table guards its cache with a sync.Mutex; all auto-extending reads
//	take the lock, so a Table (including the package-level default) is
//	safe for concurrent use. Re-sieving has no cancellation mechanism —
//	bound your requested n.
//
// Errors (sentinel):
//
//	– ErrNegativeLimit if a negative bound is passed to Extend or UpTo.
//
// The package-level functions (Extend, Reset, UpTo, Count, IsPrime, Limit)
// operate on a shared default Table; NewTable builds an independent one,
// optionally with a zap logger that reports each full recomputation:
//
//	t := primes.NewTable(primes.WithLogger(logger))
package primes
