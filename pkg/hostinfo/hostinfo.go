// Package hostinfo captures the machine a benchmark ran on, so that run
// times and heap deltas in a report can be read against the hardware that
// produced them.
package hostinfo

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Snapshot describes the benchmark host.
type Snapshot struct {
	Hostname  string `json:"hostname" parquet:"hostname"`
	GoVersion string `json:"go_version" parquet:"go_version"`
	GOOS      string `json:"goos" parquet:"goos"`
	GOARCH    string `json:"goarch" parquet:"goarch"`
	NumCPU    int    `json:"num_cpu" parquet:"num_cpu"`
	// TotalMemoryBytes is physical RAM; zero when the platform gives no
	// reliable answer.
	TotalMemoryBytes uint64 `json:"total_memory_bytes" parquet:"total_memory_bytes"`
}

// Capture reads the current host description.
func Capture() Snapshot {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	mem, ok := totalSystemMemory()
	if !ok {
		mem = 0
	}
	return Snapshot{
		Hostname:         host,
		GoVersion:        runtime.Version(),
		GOOS:             runtime.GOOS,
		GOARCH:           runtime.GOARCH,
		NumCPU:           runtime.NumCPU(),
		TotalMemoryBytes: mem,
	}
}

// MarshalZerologObject lets a snapshot be logged with Object("host", s).
func (s Snapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Str("hostname", s.Hostname).
		Str("go_version", s.GoVersion).
		Str("os", s.GOOS).
		Str("arch", s.GOARCH).
		Int("num_cpu", s.NumCPU).
		Uint64("total_memory_bytes", s.TotalMemoryBytes)
}
