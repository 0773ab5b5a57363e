package sortalgo

import (
	"fmt"
	"testing"

	"github.com/eunmann/sort-eval/pkg/benchutil"
)

func BenchmarkSort(b *testing.B) {
	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	for _, n := range benchutil.BenchmarkSizes {
		input := gen.Random(n)
		for _, a := range All() {
			b.Run(fmt.Sprintf("%s/n=%d", a.Name(), n), func(b *testing.B) {
				benchmarkSort(b, a, input)
			})
		}
	}
}

func BenchmarkSortShapes(b *testing.B) {
	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	const n = 5000
	for _, shape := range benchutil.Shapes {
		input, err := gen.Shape(shape, n)
		if err != nil {
			b.Fatal(err)
		}
		for _, a := range All() {
			b.Run(fmt.Sprintf("%s/%s", a.Name(), shape), func(b *testing.B) {
				benchmarkSort(b, a, input)
			})
		}
	}
}

// BenchmarkSortScaling runs the full suite at sizes where the quadratic
// algorithms take seconds per op.
func BenchmarkSortScaling(b *testing.B) {
	benchutil.SkipIfNoLongBench(b)

	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	for _, n := range benchutil.ScalingSizes {
		input := gen.Random(n)
		for _, a := range All() {
			b.Run(fmt.Sprintf("%s/n=%d", a.Name(), n), func(b *testing.B) {
				benchmarkSort(b, a, input)
			})
		}
	}
}

func benchmarkSort(b *testing.B, a Algorithm, input []int) {
	b.ReportAllocs()
	var work []int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work = benchutil.Fresh(work, input)
		b.StartTimer()
		a.Sort(work)
	}
}
