package benchutil

import (
	"os"
	"slices"
	"testing"
)

// SkipIfNoLongBench skips the benchmark if SORTEVAL_LONG_BENCH is not set.
// Use this to gate the quadratic sorts at scaling sizes.
func SkipIfNoLongBench(b *testing.B) {
	if os.Getenv("SORTEVAL_LONG_BENCH") == "" {
		b.Skip("set SORTEVAL_LONG_BENCH=1 to run scaling benchmark")
	}
}

// Sorted returns an ascending copy of s.
func Sorted(s []int) []int {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Fresh copies src into dst (reallocating when too small) and returns it.
// Benchmarks call it inside the timed loop with b.StopTimer held so every
// iteration sorts the same unsorted input.
func Fresh(dst, src []int) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}
