package primes

// defaultTable is the process-wide table behind the package-level API.
// Reset gives tests a deterministic way back to the empty state.
var defaultTable = NewTable()

// Extend grows the default table to cover all primes ≤ n.
// See Table.Extend.
func Extend(n int64) error { return defaultTable.Extend(n) }

// Reset drops the default table back to the empty, zero-watermark state.
func Reset() { defaultTable.Reset() }

// Limit reports the default table's watermark.
func Limit() int64 { return defaultTable.Limit() }

// UpTo returns all primes ≤ n from the default table. See Table.UpTo.
func UpTo(n int64) ([]int64, error) { return defaultTable.UpTo(n) }

// Count is π(x) over the default table. See Table.Count.
func Count(x float64) int64 { return defaultTable.Count(x) }

// IsPrime reports whether n is prime, using the default table.
func IsPrime(n int64) bool { return defaultTable.IsPrime(n) }
