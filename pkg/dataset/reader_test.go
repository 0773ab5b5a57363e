package dataset

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func readValues(t *testing.T, r Reader) []int {
	t.Helper()
	var got []int
	for {
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			return got
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, v)
	}
}

func TestCSVReader(t *testing.T) {
	csv := "id,limit\n1,5000\n2, 12000 \n3,-7\n"
	r := NewCSVReader(strings.NewReader(csv), CSVConfig{Column: 1, Header: true})

	got := readValues(t, r)
	want := []int{5000, 12000, -7}
	if !slices.Equal(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
}

func TestCSVReaderNoHeader(t *testing.T) {
	r := NewCSVReader(strings.NewReader("4\n2\n"), CSVConfig{})
	if got := readValues(t, r); !slices.Equal(got, []int{4, 2}) {
		t.Errorf("values = %v, want [4 2]", got)
	}
}

func TestCSVReaderMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"not_integer", "h\n12\nabc\n"},
		{"empty_field", "h\n12\n\"\"\n"},
		{"decimal", "h\n1.5\n"},
		{"short_row", "a,b\n1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := 0
			if tt.name == "short_row" {
				col = 1
			}
			r := NewCSVReader(strings.NewReader(tt.csv), CSVConfig{Column: col, Header: true})
			var err error
			for err == nil {
				_, err = r.Next()
			}
			if !errors.Is(err, ErrMalformedRow) {
				t.Errorf("err = %v, want ErrMalformedRow", err)
			}
		})
	}
}

func TestCSVReaderFromStreamGzip(t *testing.T) {
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	_, _ = gzw.Write([]byte("v\n10\n20\n"))
	gzw.Close()

	r, err := NewCSVReaderFromStream(io.NopCloser(&buf), CompressionGzip, CSVConfig{Header: true})
	if err != nil {
		t.Fatalf("NewCSVReaderFromStream failed: %v", err)
	}
	defer r.Close()

	if got := readValues(t, r); !slices.Equal(got, []int{10, 20}) {
		t.Errorf("values = %v, want [10 20]", got)
	}
}

func TestCSVReaderFromStreamZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = zw.Write([]byte("v\n7\n8\n9\n"))
	zw.Close()

	r, err := NewCSVReaderFromStream(io.NopCloser(&buf), CompressionZstd, CSVConfig{Header: true})
	if err != nil {
		t.Fatalf("NewCSVReaderFromStream failed: %v", err)
	}
	defer r.Close()

	if got := readValues(t, r); !slices.Equal(got, []int{7, 8, 9}) {
		t.Errorf("values = %v, want [7 8 9]", got)
	}
}

func TestCSVReaderFromStreamBadGzip(t *testing.T) {
	closed := false
	rc := &trackingCloser{Reader: strings.NewReader("not gzip"), closed: &closed}

	_, err := NewCSVReaderFromStream(rc, CompressionGzip, CSVConfig{})
	if err == nil {
		t.Fatal("expected error for invalid gzip stream")
	}
	if !closed {
		t.Error("stream not closed on error")
	}
}

type trackingCloser struct {
	io.Reader
	closed *bool
}

func (c *trackingCloser) Close() error {
	*c.closed = true
	return nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		src      Source
		wantFmt  Format
		wantComp Compression
	}{
		{Source{Path: "data/CreditCardData.csv"}, FormatCSV, CompressionNone},
		{Source{Path: "data/sales.CSV.GZ"}, FormatCSV, CompressionGzip},
		{Source{Path: "s3://b/k/sales.csv.zst"}, FormatCSV, CompressionZstd},
		{Source{Path: "values.parquet"}, FormatParquet, CompressionNone},
		{Source{Path: "values.bin", Format: FormatParquet}, FormatParquet, CompressionNone},
		{Source{Path: "noext"}, FormatCSV, CompressionNone},
	}

	for _, tt := range tests {
		f, c := tt.src.Detect()
		if f != tt.wantFmt || c != tt.wantComp {
			t.Errorf("Detect(%q) = (%q, %q), want (%q, %q)", tt.src.Path, f, c, tt.wantFmt, tt.wantComp)
		}
	}
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{"s3://bucket/key.csv", "bucket", "key.csv", false},
		{"s3://bucket/path/to/data.csv.gz", "bucket", "path/to/data.csv.gz", false},
		{"s3://bucket", "", "", true},
		{"s3://bucket/", "", "", true},
		{"s3:///key", "", "", true},
		{"https://bucket/key", "", "", true},
	}

	for _, tt := range tests {
		bucket, key, err := ParseS3URI(tt.uri)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseS3URI(%q) err = %v, wantErr %v", tt.uri, err, tt.wantErr)
			continue
		}
		if bucket != tt.wantBucket || key != tt.wantKey {
			t.Errorf("ParseS3URI(%q) = (%q, %q), want (%q, %q)", tt.uri, bucket, key, tt.wantBucket, tt.wantKey)
		}
	}
}
