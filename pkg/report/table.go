package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	bestStyle     = cellStyle.Foreground(colorAccent).Bold(true)
)

// RenderTable writes c as a titled table: one row per x point, one column
// per algorithm. The lowest value in each row is highlighted.
func RenderTable(w io.Writer, c *Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	entries := c.Series.Entries()
	headers := make([]string, 0, len(entries)+1)
	headers = append(headers, c.XLabel)
	for _, e := range entries {
		headers = append(headers, string(e.Name))
	}

	rows := make([][]string, len(c.X))
	best := make([]int, len(c.X))
	for i, x := range c.X {
		row := make([]string, 0, len(entries)+1)
		row = append(row, strconv.FormatInt(x, 10))
		best[i] = -1
		for j, e := range entries {
			row = append(row, strconv.FormatInt(e.Values[i], 10))
			if best[i] < 0 || e.Values[i] < entries[best[i]].Values[i] {
				best[i] = j
			}
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0 && row >= 0 && row < len(best) && best[row] == col-1:
				return bestStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")
	if c.Subtitle != "" {
		b.WriteString(subtitleStyle.Render(c.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString(subtitleStyle.Render(c.YLabel))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// RenderTables writes every chart in r separated by blank lines.
func RenderTables(w io.Writer, r *Report) error {
	for i, c := range r.Charts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
		}
		if err := RenderTable(w, c); err != nil {
			return err
		}
	}
	return nil
}
