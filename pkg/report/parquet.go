package report

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// Row is one measurement in long format: a single (chart, x, algorithm)
// cell. Long format keeps the schema fixed however many algorithms or
// x points a chart has.
type Row struct {
	RunID     string `parquet:"run_id"`
	Scenario  string `parquet:"scenario"`
	Title     string `parquet:"title"`
	XLabel    string `parquet:"x_label"`
	YLabel    string `parquet:"y_label"`
	Unit      string `parquet:"unit"`
	X         int64  `parquet:"x"`
	Algorithm string `parquet:"algorithm"`
	Value     int64  `parquet:"value"`
	Trials    int32  `parquet:"trials"`
	Hostname  string `parquet:"hostname"`
	GoVersion string `parquet:"go_version"`
	NumCPU    int32  `parquet:"num_cpu"`
}

// Rows flattens r into long-format rows ordered by chart, x, algorithm.
func Rows(r *Report) []Row {
	var rows []Row
	for _, c := range r.Charts {
		if c.Series == nil {
			continue
		}
		entries := c.Series.Entries()
		for i, x := range c.X {
			for _, e := range entries {
				if i >= len(e.Values) {
					continue
				}
				rows = append(rows, Row{
					RunID:     r.RunID,
					Scenario:  c.Scenario,
					Title:     c.Title,
					XLabel:    c.XLabel,
					YLabel:    c.YLabel,
					Unit:      c.Unit,
					X:         x,
					Algorithm: string(e.Name),
					Value:     e.Values[i],
					Trials:    int32(r.Trials),
					Hostname:  r.Host.Hostname,
					GoVersion: r.Host.GoVersion,
					NumCPU:    int32(r.Host.NumCPU),
				})
			}
		}
	}
	return rows
}

// WriteParquet writes r as long-format Parquet rows.
func WriteParquet(w io.Writer, r *Report) error {
	pw := parquet.NewGenericWriter[Row](w)
	if _, err := pw.Write(Rows(r)); err != nil {
		pw.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
