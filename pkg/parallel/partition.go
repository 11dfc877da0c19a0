package parallel

import (
	"runtime"
)

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of indexes in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// ResolveWorkers maps a requested worker count to an effective one.
// Non-positive requests use runtime.NumCPU().
func ResolveWorkers(requested int) int {
	if requested <= 0 {
		return runtime.NumCPU()
	}
	return requested
}

// Partition divides [0, n) into at most parts contiguous ranges of nearly
// equal size. The result is empty when n <= 0.
func Partition(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	// Use int64 to prevent overflow in intermediate calculation
	chunkSize := int((int64(n) + int64(parts) - 1) / int64(parts))

	ranges := make([]Range, 0, parts)
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		ranges = append(ranges, Range{Lo: lo, Hi: hi})
	}
	return ranges
}

// RunPartitions calls fn(part, ranges[part]) for every range on a worker
// pool with one worker per range, blocking until all have returned.
//
// Each part index is passed to exactly one call, so callers can give every
// call its own accumulator (accs[part]) and merge them sequentially afterwards.
func RunPartitions(ranges []Range, fn func(part int, r Range)) error {
	if len(ranges) == 0 {
		return nil
	}

	pool, err := NewWorkerPool(len(ranges))
	if err != nil {
		return err
	}

	for part, r := range ranges {
		pool.Submit(func() {
			fn(part, r)
		})
	}

	return pool.Wait()
}
