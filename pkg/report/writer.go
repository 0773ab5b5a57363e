package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eunmann/sort-eval/internal/logctx"
	"github.com/eunmann/sort-eval/pkg/fileutil"
	"github.com/eunmann/sort-eval/pkg/logging"
)

// Format names an output renderer.
type Format string

// Supported formats.
const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatParquet:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Writer renders reports. Tables go to Stdout; JSON and Parquet go to
// files under Dir named after the run id.
type Writer struct {
	Dir     string
	Stdout  io.Writer
	Formats []Format
}

// Write renders r in every configured format and returns the files created.
func (w *Writer) Write(ctx context.Context, r *Report) ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range w.Formats {
		start := time.Now()
		switch f {
		case FormatTable:
			out := w.Stdout
			if out == nil {
				out = os.Stdout
			}
			if err := RenderTables(out, r); err != nil {
				return paths, err
			}
		case FormatJSON, FormatParquet:
			p, size, err := w.writeFile(r, f)
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
			logging.ReportWritten(logctx.FromContext(ctx), "report", time.Since(start)).
				Str("format", string(f)).
				Str("path", p).
				Bytes("file_bytes", size).
				Int("charts", len(r.Charts)).
				Log("report written")
		default:
			return paths, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	return paths, nil
}

func (w *Writer) writeFile(r *Report, f Format) (string, int64, error) {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	name := "sorteval"
	if r.RunID != "" {
		name += "-" + r.RunID
	}
	p := filepath.Join(dir, name+"."+string(f))
	if err := fileutil.CleanupTmpFiles(p); err != nil {
		return "", 0, fmt.Errorf("clean stale temp files: %w", err)
	}

	size, err := fileutil.WriteAtomic(p, func(file *os.File) error {
		if f == FormatParquet {
			return WriteParquet(file, r)
		}
		return WriteJSON(file, r)
	})
	if err != nil {
		return "", 0, fmt.Errorf("write %s: %w", p, err)
	}
	return p, size, nil
}
