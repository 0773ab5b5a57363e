package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/hostinfo"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart() *Chart {
	s := harness.NewSeries()
	for _, v := range []int64{1, 4, 9, 16} {
		s.Append("BubbleSort", v)
	}
	for _, v := range []int64{0, 1, 2, 3} {
		s.Append("QuickSort", v)
	}
	return &Chart{
		Scenario: "uniform/runtime/size",
		Title:    "Data Size vs Run Time - Dataset 1",
		Subtitle: "Sorting Evaluation (Uniform Distribution)",
		XLabel:   "Data Size",
		YLabel:   "Run Time(in ms)",
		Unit:     "ms",
		X:        []int64{100, 1000, 5000, 10000},
		Series:   s,
	}
}

func sampleReport() *Report {
	return &Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Host:        hostinfo.Snapshot{Hostname: "bench", GoVersion: "go1.25.3", NumCPU: 8},
		Trials:      5,
		Charts:      []*Chart{sampleChart()},
	}
}

func TestChartValidate(t *testing.T) {
	c := sampleChart()
	require.NoError(t, c.Validate())

	c.X = c.X[:3]
	err := c.Validate()
	assert.ErrorIs(t, err, harness.ErrSeriesMisaligned)

	assert.ErrorIs(t, (&Chart{Title: "empty"}).Validate(), ErrEmptyChart)
}

func TestReportValidateJoinsErrors(t *testing.T) {
	bad := sampleChart()
	bad.X = nil
	r := &Report{Charts: []*Chart{sampleChart(), bad, {Title: "nil"}}}

	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, harness.ErrSeriesMisaligned))
	assert.True(t, errors.Is(err, ErrEmptyChart))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleChart()))

	out := buf.String()
	for _, want := range []string{"Data Size vs Run Time - Dataset 1", "Run Time(in ms)", "BubbleSort", "QuickSort", "10000", "16"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderTableRejectsMisaligned(t *testing.T) {
	c := sampleChart()
	c.X = append(c.X, 20000)
	assert.Error(t, RenderTable(&bytes.Buffer{}, c))
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))
	assert.Contains(t, buf.String(), `"x_label": "Data Size"`)

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, got.Charts, 1)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, []int64{1, 4, 9, 16}, got.Charts[0].Series.Values("BubbleSort"))
	assert.Equal(t, "ms", got.Charts[0].Unit)
	assert.NoError(t, got.Validate())
}

func TestRows(t *testing.T) {
	rows := Rows(sampleReport())
	require.Len(t, rows, 8)
	assert.Equal(t, Row{
		RunID: "run-1", Scenario: "uniform/runtime/size",
		Title: "Data Size vs Run Time - Dataset 1", XLabel: "Data Size", YLabel: "Run Time(in ms)", Unit: "ms",
		X: 100, Algorithm: "BubbleSort", Value: 1, Trials: 5,
		Hostname: "bench", GoVersion: "go1.25.3", NumCPU: 8,
	}, rows[0])
	assert.Equal(t, "QuickSort", rows[7].Algorithm)
	assert.Equal(t, int64(3), rows[7].Value)
}

func TestWriteParquet(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.parquet")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, WriteParquet(f, sampleReport()))
	require.NoError(t, f.Close())

	rows, err := parquet.ReadFile[Row](p)
	require.NoError(t, err)
	assert.Equal(t, Rows(sampleReport()), rows)
}

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	w := &Writer{
		Dir:     filepath.Join(dir, "out"),
		Stdout:  &stdout,
		Formats: []Format{FormatTable, FormatJSON, FormatParquet},
	}

	paths, err := w.Write(context.Background(), sampleReport())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "out", "sorteval-run-1.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "out", "sorteval-run-1.parquet"), paths[1])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, stdout.String(), "QuickSort")
}

func TestWriterKeepsForeignTempFiles(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "notes.tmp")
	stale := filepath.Join(dir, "sorteval-run-1.json.42.tmp")
	require.NoError(t, os.WriteFile(foreign, []byte("user data"), 0o644))
	require.NoError(t, os.WriteFile(stale, []byte("partial"), 0o644))

	w := &Writer{Dir: dir, Formats: []Format{FormatJSON}}
	_, err := w.Write(context.Background(), sampleReport())
	require.NoError(t, err)

	data, err := os.ReadFile(foreign)
	require.NoError(t, err)
	assert.Equal(t, "user data", string(data))
	assert.NoFileExists(t, stale)
}

func TestWriterUnknownFormat(t *testing.T) {
	w := &Writer{Dir: t.TempDir(), Formats: []Format{"svg"}}
	_, err := w.Write(context.Background(), sampleReport())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", " parquet "} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("png")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.True(t, strings.Contains(err.Error(), "png"))
}
