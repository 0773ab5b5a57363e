package benchutil

// Shared constants for benchmarks across packages.

// BenchmarkSeed is the default seed for reproducible benchmark data generation.
const BenchmarkSeed = 42

// Standard benchmark sizes for quick runs. These match the default
// evaluation sizes.
var BenchmarkSizes = []int{100, 1000, 5000, 10000}

// ScalingSizes are larger sizes for comprehensive scaling tests.
// Used with SORTEVAL_LONG_BENCH=1 environment variable.
var ScalingSizes = []int{25000, 50000, 100000}

// Shapes are the standard input orderings for benchmarking.
//   - random: uniformly shuffled values
//   - sorted: already ascending
//   - reversed: strictly descending, the inversion maximum
//   - nearly_sorted: ascending with 1% random swaps
//   - few_unique: values drawn from four distinct keys
var Shapes = []string{
	"random",
	"sorted",
	"reversed",
	"nearly_sorted",
	"few_unique",
}
