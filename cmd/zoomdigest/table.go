package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"zoomdigest/internal/attendees"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

type tableView struct {
	title   string
	headers []string
	rows    [][]string
	aligns  []columnAlignment
	footer  []string
}

func renderTable(view tableView) string {
	columns := len(view.headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Title.Format = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	if view.title != "" {
		tw.SetTitle(view.title)
	}
	tw.AppendHeader(toRow(view.headers, columns))
	for _, row := range view.rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(view.footer) > 0 {
		tw.AppendFooter(toRow(view.footer, columns))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(view.aligns) && view.aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// toRow pads or truncates cells to the column count.
func toRow(cells []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

func renderDigestTable(records []attendees.DigestedRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return renderTable(tableView{
		headers: attendees.DigestHeader,
		rows:    rows,
		footer:  []string{"", "", fmt.Sprintf("%d attendee(s)", len(records))},
	})
}

func renderStatsTable(stats attendees.Stats) string {
	count := func(label string, n int) []string { return []string{label, strconv.Itoa(n)} }
	return renderTable(tableView{
		title:   "Digest statistics",
		headers: []string{"Stage", "Rows"},
		rows: [][]string{
			count("Rows read", stats.Rows),
			count("Unparsed leave times", stats.UnparsedLeaveTimes),
			count("Duplicates removed", stats.Duplicates),
			count("Not guests", stats.NonGuests),
			count("No leave time", stats.MissingLeaveTime),
			count("Left before cutoff", stats.BeforeCutoff),
		},
		aligns: []columnAlignment{alignLeft, alignRight},
		footer: count("Emitted", stats.Emitted),
	})
}
