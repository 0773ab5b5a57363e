package sortedness

import (
	"fmt"
	"testing"

	"github.com/eunmann/sort-eval/pkg/benchutil"
)

func BenchmarkCount(b *testing.B) {
	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	for _, n := range benchutil.BenchmarkSizes {
		input := gen.Random(n)
		b.Run(fmt.Sprintf("merge/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Count(input)
			}
		})
		b.Run(fmt.Sprintf("naive/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Naive(input)
			}
		})
	}
}

func BenchmarkCountScaling(b *testing.B) {
	benchutil.SkipIfNoLongBench(b)

	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	for _, n := range benchutil.ScalingSizes {
		input := gen.Random(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Count(input)
			}
		})
	}
}
