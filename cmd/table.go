package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable draws rows under a title with a row-count footer. Short rows
// are padded. Columns holding only integers are right-aligned.
func renderTable(title string, headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, r := range rows {
		tw.AppendRow(toRow(r, len(headers)))
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d rows", len(rows))})

	configs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if numericColumn(rows, i) {
			configs[i].Align = text.AlignRight
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(cells []string, width int) table.Row {
	r := make(table.Row, width)
	for i := range r {
		r[i] = ""
		if i < len(cells) {
			r[i] = cells[i]
		}
	}
	return r
}

func numericColumn(rows [][]string, col int) bool {
	seen := false
	for _, r := range rows {
		if col >= len(r) || r[col] == "" {
			continue
		}
		if _, err := strconv.Atoi(r[col]); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
