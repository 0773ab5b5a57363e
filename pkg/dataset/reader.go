package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Reader yields one integer per dataset row.
type Reader interface {
	// Next returns the next value. Returns io.EOF when all rows have been read.
	Next() (int, error)

	// Close releases resources associated with the reader.
	Close() error
}

// CSVConfig configures the CSV reader.
type CSVConfig struct {
	// Column is the zero-based field index holding the value.
	Column int

	// Header skips the first record.
	Header bool
}

// csvReader reads one integer column from a CSV stream.
type csvReader struct {
	csvReader *csv.Reader
	column    int
	header    bool
	row       int
	closers   []func() error
}

// NewCSVReader creates a CSV reader over already decompressed data.
func NewCSVReader(r io.Reader, cfg CSVConfig) Reader {
	return &csvReader{
		csvReader: newCSV(r),
		column:    cfg.Column,
		header:    cfg.Header,
	}
}

// NewCSVReaderFromStream creates a CSV reader that decompresses rc
// according to comp. Closing the reader closes rc.
func NewCSVReaderFromStream(rc io.ReadCloser, comp Compression, cfg CSVConfig) (Reader, error) {
	r, closeDecomp, err := decompressReader(rc, comp)
	if err != nil {
		rc.Close()
		return nil, err
	}

	closers := []func() error{rc.Close}
	if closeDecomp != nil {
		closers = append(closers, closeDecomp)
	}

	return &csvReader{
		csvReader: newCSV(r),
		column:    cfg.Column,
		header:    cfg.Header,
		closers:   closers,
	}, nil
}

func newCSV(r io.Reader) *csv.Reader {
	csvr := csv.NewReader(r)
	csvr.ReuseRecord = true
	csvr.FieldsPerRecord = -1 // Variable field count
	csvr.LazyQuotes = true    // Handle malformed quotes
	return csvr
}

// decompressReader wraps r with the decompressor for comp. The returned
// closer may be nil if no wrapper was added.
func decompressReader(r io.Reader, comp Compression) (io.Reader, func() error, error) {
	switch comp {
	case CompressionNone:
		return r, nil, nil
	case CompressionGzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return gzr, gzr.Close, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create zstd reader: %w", err)
		}
		return zr, func() error { zr.Close(); return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: compression %q", ErrUnsupportedFormat, comp)
	}
}

// Next returns the next value.
func (r *csvReader) Next() (int, error) {
	for {
		fields, err := r.csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("read CSV row %d: %w", r.row+1, err)
		}
		r.row++

		if r.header && r.row == 1 {
			continue
		}

		if len(fields) <= r.column {
			return 0, fmt.Errorf("%w: row %d has %d fields, need column %d", ErrMalformedRow, r.row, len(fields), r.column)
		}

		raw := strings.TrimSpace(fields[r.column])
		if raw == "" {
			return 0, fmt.Errorf("%w: row %d column %d is empty", ErrMalformedRow, r.row, r.column)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: row %d column %d: %q is not an integer", ErrMalformedRow, r.row, r.column, raw)
		}
		return v, nil
	}
}

// Close releases resources in reverse order (decompressor before stream).
func (r *csvReader) Close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
