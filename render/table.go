// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns query results into terminal tables and PNG charts.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/sqltour/sqltour/engine"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1)

	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	proseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	footStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Section writes a numbered lesson heading.
func Section(w io.Writer, n int, title string) {
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%d. %s", n, title)))
}

// Prose writes a paragraph of lesson text.
func Prose(w io.Writer, text string) {
	fmt.Fprintln(w, proseStyle.Render(text))
}

// Query echoes the SQL about to run, the way a tutorial shows its input.
func Query(w io.Writer, q string) {
	for _, line := range strings.Split(strings.TrimSpace(q), "\n") {
		fmt.Fprintln(w, queryStyle.Render("    "+strings.TrimSpace(line)))
	}
}

// Frame writes a result set as an aligned table with a row-count footer.
func Frame(w io.Writer, f *engine.Frame) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, col := range f.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, headerStyle.Render(col))
	}
	fmt.Fprintln(tw)

	for i, col := range f.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, strings.Repeat("-", len(col)))
	}
	fmt.Fprintln(tw)

	for _, row := range f.Rows {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, formatValue(v))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	fmt.Fprintln(w, footStyle.Render(fmt.Sprintf("(%d rows)", f.Len())))
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
