// Package dataset loads integer columns from real-world data files.
//
// A Source names a CSV or Parquet file on local disk or in S3
// (s3://bucket/key). CSV files may be gzip (.gz) or zstd (.zst) compressed.
// Every row must carry a parseable integer in the target column; the first
// row that does not aborts the load with ErrMalformedRow.
package dataset

import (
	"path"
	"strings"
)

// Format identifies the on-disk encoding of a source.
type Format string

// Supported formats.
const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// Compression identifies a stream compression wrapper.
type Compression string

// Supported compressions.
const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// Source describes where a dataset lives and which column to extract.
type Source struct {
	// Name is used in log lines and errors.
	Name string

	// Path is a local path or an s3://bucket/key URI.
	Path string

	// Format overrides detection from the path extension.
	Format Format

	// Column is the zero-based CSV field index, or the Parquet leaf column
	// index when ColumnName is empty.
	Column int

	// ColumnName selects a Parquet column by name.
	ColumnName string

	// Header skips the first CSV record.
	Header bool

	// Limit stops reading after this many values. Zero reads everything.
	Limit int
}

// IsS3 reports whether the source lives in S3.
func (s Source) IsS3() bool {
	return strings.HasPrefix(s.Path, "s3://")
}

func (s Source) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// Detect returns the format and compression implied by the source. An
// explicit Format wins over the extension.
func (s Source) Detect() (Format, Compression) {
	name := strings.ToLower(path.Base(s.Path))

	comp := CompressionNone
	switch {
	case strings.HasSuffix(name, ".gz"):
		comp = CompressionGzip
		name = strings.TrimSuffix(name, ".gz")
	case strings.HasSuffix(name, ".zst"):
		comp = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	}

	if s.Format != "" {
		return s.Format, comp
	}
	if strings.HasSuffix(name, ".parquet") {
		return FormatParquet, comp
	}
	return FormatCSV, comp
}
