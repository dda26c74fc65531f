package primes

import (
	"errors"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ErrNegativeLimit indicates a negative bound was requested for the table.
var ErrNegativeLimit = errors.New("primes: limit must be non-negative")

// Table caches the ascending sequence of all primes ≤ Limit().
//
// The cache only grows (the watermark is monotonically non-decreasing),
// except on an explicit Reset. Every read path that may auto-extend takes
// the internal mutex, so a Table is safe to share across goroutines.
type Table struct {
	mu    sync.Mutex
	limit int64
	cache []int64
	log   *zap.Logger
}

// Option configures a Table before first use.
type Option func(*Table)

// WithLogger attaches a zap logger; each full sieve recomputation is
// reported at Info level. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(t *Table) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTable returns an empty Table with watermark 0.
func NewTable(opts ...Option) *Table {
	t := &Table{log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Limit reports the current watermark: the cache holds exactly the primes ≤ Limit().
func (t *Table) Limit() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.limit
}

// Extend grows the table so that it covers all primes ≤ n.
//
// Returns ErrNegativeLimit for n < 0, before any mutation. If n does not
// exceed the current watermark the call is a no-op; otherwise the full
// sieve is recomputed from scratch up to n (extension is not incremental).
func (t *Table) Extend(n int64) error {
	if n < 0 {
		return ErrNegativeLimit
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.growLocked(n)

	return nil
}

// Reset drops the cache back to the empty, zero-watermark state.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.limit = 0
	t.cache = nil
}

// UpTo returns the ascending sequence of all primes ≤ n, auto-extending
// the table if n exceeds the watermark. Returns ErrNegativeLimit for n < 0.
func (t *Table) UpTo(n int64) ([]int64, error) {
	if n < 0 {
		return nil, ErrNegativeLimit
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.growLocked(n)

	i := t.searchAboveLocked(n)
	out := make([]int64, i)
	copy(out, t.cache[:i])

	return out, nil
}

// Count is the prime-counting function π(x): the number of primes ≤ x.
// Negative x yields 0; otherwise the table auto-extends to ⌊x⌋.
func (t *Table) Count(x float64) int64 {
	if x < 0 {
		return 0
	}
	n := int64(math.Floor(x))
	t.mu.Lock()
	defer t.mu.Unlock()
	t.growLocked(n)

	return int64(t.searchAboveLocked(n))
}

// IsPrime reports whether n is prime, auto-extending the table to n.
// Values below 2 are never prime and do not extend the table.
func (t *Table) IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.growLocked(n)

	i := sort.Search(len(t.cache), func(i int) bool { return t.cache[i] >= n })

	return i < len(t.cache) && t.cache[i] == n
}

// growLocked re-sieves up to n when n exceeds the watermark.
// Callers must hold t.mu.
func (t *Table) growLocked(n int64) {
	if n <= t.limit {
		return
	}
	t.log.Info("recomputing prime table", zap.Int64("limit", n))
	t.cache = Sieve(n)
	t.limit = n
}

// searchAboveLocked returns the index of the first cached prime > n.
// Callers must hold t.mu.
func (t *Table) searchAboveLocked(n int64) int {
	return sort.Search(len(t.cache), func(i int) bool { return t.cache[i] > n })
}
