package harness

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/eunmann/sort-eval/pkg/sortalgo"
)

// Entry is one algorithm's values, index-aligned with the x-axis.
type Entry struct {
	Name   sortalgo.Name `json:"name"`
	Values []int64       `json:"values"`
}

// Series maps algorithm names to averaged measurements, preserving the
// order in which algorithms were first seen.
type Series struct {
	entries []Entry
	index   map[sortalgo.Name]int
}

// NewSeries creates an empty series.
func NewSeries() *Series {
	return &Series{index: make(map[sortalgo.Name]int)}
}

// Append adds a value to the named algorithm's list.
func (s *Series) Append(name sortalgo.Name, v int64) {
	if s.index == nil {
		s.index = make(map[sortalgo.Name]int)
	}
	i, ok := s.index[name]
	if !ok {
		i = len(s.entries)
		s.index[name] = i
		s.entries = append(s.entries, Entry{Name: name})
	}
	s.entries[i].Values = append(s.entries[i].Values, v)
}

// Names returns algorithm names in insertion order.
func (s *Series) Names() []sortalgo.Name {
	names := make([]sortalgo.Name, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Values returns the values recorded for name, or nil.
func (s *Series) Values(name sortalgo.Name) []int64 {
	if i, ok := s.index[name]; ok {
		return s.entries[i].Values
	}
	return nil
}

// Entries returns all entries in insertion order.
func (s *Series) Entries() []Entry {
	return s.entries
}

// Len returns the number of algorithms in the series.
func (s *Series) Len() int {
	return len(s.entries)
}

// Validate checks that every algorithm has exactly xLen values.
func (s *Series) Validate(xLen int) error {
	for _, e := range s.entries {
		if len(e.Values) != xLen {
			return fmt.Errorf("%w: %s has %d values, x-axis has %d", ErrSeriesMisaligned, e.Name, len(e.Values), xLen)
		}
	}
	return nil
}

// Stats summarises the named algorithm's values across the x-axis.
func (s *Series) Stats(name sortalgo.Name) (Summary, bool) {
	i, ok := s.index[name]
	if !ok {
		return Summary{}, false
	}
	return Summarize(s.entries[i].Values), true
}

// Summary describes a set of measurements.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes descriptive statistics over xs.
func Summarize(xs []int64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	samp := stats.Sample{Xs: fs}
	samp.Sort()

	lo, hi := samp.Bounds()
	sum := Summary{
		N:      len(xs),
		Mean:   samp.Mean(),
		Min:    lo,
		Max:    hi,
		Median: samp.Quantile(0.5),
	}
	if len(xs) > 1 {
		if sd := samp.StdDev(); !math.IsNaN(sd) {
			sum.StdDev = sd
		}
	}
	return sum
}
