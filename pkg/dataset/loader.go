package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/eunmann/sort-eval/internal/logctx"
	"github.com/eunmann/sort-eval/pkg/logging"
)

// Loader opens sources and reads their target column into memory. It is
// safe for concurrent use; the S3 fetcher is created on first use.
type Loader struct {
	mu         sync.Mutex
	fetcher    ObjectFetcher
	newFetcher func(ctx context.Context) (ObjectFetcher, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFetcher sets the fetcher used for s3:// sources.
func WithFetcher(f ObjectFetcher) LoaderOption {
	return func(l *Loader) { l.fetcher = f }
}

// WithDownloaderConfig tunes the default S3 fetcher.
func WithDownloaderConfig(cfg DownloaderConfig) LoaderOption {
	return func(l *Loader) {
		l.newFetcher = func(ctx context.Context) (ObjectFetcher, error) {
			return NewS3Fetcher(ctx, cfg)
		}
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		newFetcher: func(ctx context.Context) (ObjectFetcher, error) {
			return NewS3Fetcher(ctx, DefaultDownloaderConfig())
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads src with a default loader.
func Load(ctx context.Context, src Source) ([]int, error) {
	return NewLoader().Load(ctx, src)
}

// Load opens src and returns its values in file order. The underlying file
// or download is released on every path.
func (l *Loader) Load(ctx context.Context, src Source) ([]int, error) {
	start := time.Now()
	log := logctx.FromContext(ctx)

	obj, err := l.open(ctx, src)
	if err != nil {
		return nil, err
	}

	size, err := obj.Size()
	if err != nil {
		obj.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, src.label(), err)
	}

	r, format, err := newReader(obj, size, src)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", src.label(), err)
	}

	values, readErr := readAll(ctx, r, src.Limit)
	closeErr := r.Close()
	if readErr != nil {
		return nil, fmt.Errorf("dataset %s: %w", src.label(), readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("dataset %s: close: %w", src.label(), closeErr)
	}

	logging.DatasetLoaded(log, "dataset", time.Since(start)).
		Str("dataset", src.label()).
		Str("format", string(format)).
		Bytes("file_bytes", size).
		Count("values", int64(len(values))).
		Log("dataset loaded")

	return values, nil
}

func (l *Loader) open(ctx context.Context, src Source) (Object, error) {
	if !src.IsS3() {
		return openLocal(src.Path)
	}

	bucket, key, err := ParseS3URI(src.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	fetcher, err := l.s3(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	log := logctx.FromContext(ctx)
	log.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Msg("fetching dataset from S3")

	obj, err := fetcher.Fetch(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return obj, nil
}

func (l *Loader) s3(ctx context.Context) (ObjectFetcher, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fetcher != nil {
		return l.fetcher, nil
	}
	f, err := l.newFetcher(ctx)
	if err != nil {
		return nil, err
	}
	l.fetcher = f
	return f, nil
}

// newReader picks the reader for src. The reader owns obj; on error obj
// has already been closed.
func newReader(obj Object, size int64, src Source) (Reader, Format, error) {
	format, comp := src.Detect()
	switch format {
	case FormatCSV:
		r, err := NewCSVReaderFromStream(obj, comp, CSVConfig{
			Column: src.Column,
			Header: src.Header,
		})
		return r, format, err
	case FormatParquet:
		if comp != CompressionNone {
			obj.Close()
			return nil, format, fmt.Errorf("%w: compressed parquet file %s", ErrUnsupportedFormat, src.Path)
		}
		r, err := NewParquetReader(obj, size, obj, ParquetConfig{
			ColumnName: src.ColumnName,
			Column:     src.Column,
		})
		if err != nil {
			obj.Close()
			return nil, format, err
		}
		return r, format, nil
	default:
		obj.Close()
		return nil, format, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func readAll(ctx context.Context, r Reader, limit int) ([]int, error) {
	var values []int
	if limit > 0 {
		values = make([]int, 0, limit)
	}

	for limit <= 0 || len(values) < limit {
		if len(values)%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
