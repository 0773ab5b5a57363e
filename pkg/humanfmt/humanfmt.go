// Package humanfmt formats byte counts, kilobyte deltas, durations and
// counts for log companions and report tables.
package humanfmt

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Binary (IEC) units for bytes.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

type unit struct {
	size   float64
	suffix string
}

var byteUnits = []unit{
	{TiB, "TiB"},
	{GiB, "GiB"},
	{MiB, "MiB"},
	{KiB, "KiB"},
}

var countUnits = []unit{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// scale renders v in the largest unit it reaches, or ok=false if none.
func scale(v int64, units []unit, sep string) (string, bool) {
	for _, u := range units {
		if float64(v) >= u.size {
			return fmt.Sprintf("%.2f%s%s", float64(v)/u.size, sep, u.suffix), true
		}
	}
	return "", false
}

// Bytes formats a byte count using IEC binary units. Negative counts keep
// their sign, so heap deltas read "-1.50 MiB".
func Bytes(b int64) string {
	if b == math.MinInt64 {
		return strconv.FormatInt(b, 10) + " B"
	}
	if b < 0 {
		return "-" + Bytes(-b)
	}
	if s, ok := scale(b, byteUnits, " "); ok {
		return s
	}
	return strconv.FormatInt(b, 10) + " B"
}

// KiloBytes formats a value already expressed in kilobytes, as produced by
// the memory metric.
func KiloBytes(kb int64) string {
	return Bytes(kb * KiB)
}

// Duration formats d compactly: "1.23s", "45.6ms", "789.0µs", "1m30s",
// "2h15m".
func Duration(d time.Duration) string {
	if d < 0 {
		return d.String()
	}

	if d >= time.Minute {
		major, minor := time.Minute, time.Second
		majorSuffix, minorSuffix := "m", "s"
		if d >= time.Hour {
			major, minor = time.Hour, time.Minute
			majorSuffix, minorSuffix = "h", "m"
		}
		hi := int64(d / major)
		lo := int64((d % major) / minor)
		if lo == 0 {
			return fmt.Sprintf("%d%s", hi, majorSuffix)
		}
		return fmt.Sprintf("%d%s%d%s", hi, majorSuffix, lo, minorSuffix)
	}

	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%dns", d.Nanoseconds())
}

// Millis formats a whole-millisecond value, as produced by the run time
// metric.
func Millis(ms int64) string {
	return Duration(time.Duration(ms) * time.Millisecond)
}

// Count formats n with K/M/B suffixes: "1.23M", "456.00K", "789".
func Count(n int64) string {
	if n < 0 {
		return strconv.FormatInt(n, 10)
	}
	if s, ok := scale(n, countUnits, ""); ok {
		return s
	}
	return strconv.FormatInt(n, 10)
}
