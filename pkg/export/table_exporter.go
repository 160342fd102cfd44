package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// TableExporter renders datasets as plain-text grids.
type TableExporter struct{}

// NewTableExporter builds a text table exporter.
func NewTableExporter() *TableExporter {
	return &TableExporter{}
}

// Render writes the dataset title followed by a grid with one line per row.
func (e *TableExporter) Render(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("table requires at least one header")
	}

	widths := lo.Map(data.Headers, func(header string, _ int) int {
		return lo.Max(append(
			lo.Map(data.Rows, func(row map[string]string, _ int) int { return utf8.RuneCountInString(row[header]) }),
			utf8.RuneCountInString(header),
		))
	})

	var builder strings.Builder
	if data.Title != "" {
		fmt.Fprintf(&builder, "\n%s:\n", data.Title)
	}

	builder.WriteString(separator(widths, "-"))
	builder.WriteString(line(widths, data.Headers))
	if len(data.Rows) == 0 {
		builder.WriteString(separator(widths, "-"))
	} else {
		builder.WriteString(separator(widths, "="))
	}
	for _, row := range data.Rows {
		builder.WriteString(line(widths, lo.Map(data.Headers, func(header string, _ int) string { return row[header] })))
		builder.WriteString(separator(widths, "-"))
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func separator(widths []int, fill string) string {
	cells := lo.Map(widths, func(width int, _ int) string { return strings.Repeat(fill, width+2) })
	return "+" + strings.Join(cells, "+") + "+\n"
}

func line(widths []int, values []string) string {
	cells := lo.Map(values, func(value string, i int) string {
		return " " + value + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(value)) + " "
	})
	return "|" + strings.Join(cells, "|") + "|\n"
}
