// Package memprobe samples process heap usage around a single sort call.
//
// Samples are process-wide: garbage left behind by dataset generation or a
// previous trial can be collected between the two samples, so a delta may
// be zero or negative. That noise is inherent to the metric and is reported
// as measured.
package memprobe

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// Stats holds the subset of runtime memory statistics the benchmark reports.
type Stats struct {
	// HeapAlloc is bytes of allocated heap objects.
	HeapAlloc uint64

	// HeapInuse is bytes in in-use spans.
	HeapInuse uint64

	// TotalAlloc is cumulative bytes allocated (even if freed).
	TotalAlloc uint64

	// Sys is bytes obtained from OS.
	Sys uint64

	// NumGC is the number of completed GC cycles.
	NumGC uint32
}

// Read reads current memory statistics.
func Read() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.HeapAlloc,
		HeapInuse:  m.HeapInuse,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// Sampler reports the heap bytes currently in use by the process.
type Sampler interface {
	HeapInUse() uint64
}

// RuntimeSampler samples the Go runtime's live heap.
type RuntimeSampler struct{}

// HeapInUse returns the allocated heap bytes.
func (RuntimeSampler) HeapInUse() uint64 {
	return Read().HeapAlloc
}

// DeltaKB converts two heap samples into a signed kilobyte delta,
// truncating toward zero.
func DeltaKB(before, after uint64) int64 {
	return (int64(after) - int64(before)) / 1024
}

// FormatMB formats bytes as megabytes.
func FormatMB(b uint64) string {
	return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
}

// ForceGC forces a garbage collection and logs how much heap it freed.
// The harness calls it before memory trials to shrink the noise floor.
func ForceGC(log zerolog.Logger) {
	before := Read()
	runtime.GC()
	after := Read()

	freed := int64(before.HeapAlloc) - int64(after.HeapAlloc)

	log.Debug().
		Str("before_heap", FormatMB(before.HeapAlloc)).
		Str("after_heap", FormatMB(after.HeapAlloc)).
		Str("freed", FormatMB(uint64(max(freed, 0)))).
		Msg("forced GC")
}
