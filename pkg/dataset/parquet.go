package dataset

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// ParquetConfig selects the column to read.
type ParquetConfig struct {
	// ColumnName selects a top-level column by name.
	ColumnName string

	// Column is the leaf column index, used when ColumnName is empty.
	Column int
}

// parquetReader streams one integer column by iterating row groups.
type parquetReader struct {
	file   *parquet.File
	closer io.Closer
	column int
	row    int

	rowGroups    []parquet.RowGroup
	currentRGIdx int
	currentRows  parquet.Rows
	rowBuf       []parquet.Row
	bufIdx       int
	bufLen       int
}

// NewParquetReader opens a Parquet file from random-access data. If closer
// is non-nil it is closed with the reader.
func NewParquetReader(r io.ReaderAt, size int64, closer io.Closer, cfg ParquetConfig) (Reader, error) {
	file, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	column, err := resolveColumn(file.Schema(), cfg)
	if err != nil {
		return nil, err
	}

	return &parquetReader{
		file:         file,
		closer:       closer,
		column:       column,
		rowGroups:    file.RowGroups(),
		currentRGIdx: -1,
		rowBuf:       make([]parquet.Row, 1024),
	}, nil
}

// resolveColumn maps the configured column to a leaf index in a flat schema.
func resolveColumn(schema *parquet.Schema, cfg ParquetConfig) (int, error) {
	fields := schema.Fields()
	if cfg.ColumnName == "" {
		if cfg.Column < 0 || cfg.Column >= len(fields) {
			return -1, fmt.Errorf("%w: parquet column %d out of range (schema has %d)", ErrMalformedRow, cfg.Column, len(fields))
		}
		return cfg.Column, nil
	}

	for i, field := range fields {
		if field.Name() == cfg.ColumnName {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: parquet schema missing %q column", ErrMalformedRow, cfg.ColumnName)
}

// Next returns the next value.
func (r *parquetReader) Next() (int, error) {
	for {
		if r.bufIdx < r.bufLen {
			row := r.rowBuf[r.bufIdx]
			r.bufIdx++
			r.row++
			return r.value(row)
		}

		if r.currentRows != nil {
			n, err := r.currentRows.ReadRows(r.rowBuf)
			if n > 0 {
				r.bufIdx = 0
				r.bufLen = n
				continue
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("read parquet rows: %w", err)
			}
			r.currentRows.Close()
			r.currentRows = nil
		}

		r.currentRGIdx++
		if r.currentRGIdx >= len(r.rowGroups) {
			return 0, io.EOF
		}
		r.currentRows = r.rowGroups[r.currentRGIdx].Rows()
	}
}

// value extracts the target column from a row. Nulls and non-numeric
// values are rejected.
func (r *parquetReader) value(row parquet.Row) (int, error) {
	for _, val := range row {
		if val.Column() != r.column {
			continue
		}
		if val.IsNull() {
			return 0, fmt.Errorf("%w: row %d column %d is null", ErrMalformedRow, r.row, r.column)
		}

		switch val.Kind() {
		case parquet.Int32:
			return int(val.Int32()), nil
		case parquet.Int64:
			return int(val.Int64()), nil
		case parquet.ByteArray:
			v, err := strconv.Atoi(string(val.ByteArray()))
			if err != nil {
				return 0, fmt.Errorf("%w: row %d column %d: %q is not an integer", ErrMalformedRow, r.row, r.column, val.ByteArray())
			}
			return v, nil
		default:
			return 0, fmt.Errorf("%w: row %d column %d has kind %s", ErrMalformedRow, r.row, r.column, val.Kind())
		}
	}
	return 0, fmt.Errorf("%w: row %d has no column %d", ErrMalformedRow, r.row, r.column)
}

// Close releases resources.
func (r *parquetReader) Close() error {
	if r.currentRows != nil {
		r.currentRows.Close()
		r.currentRows = nil
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
