package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"gridview"
	"gridview/attribute"
	"gridview/common"
	"gridview/selection"
)

const (
	minCellWidth = 6
	checkWidth   = 3
)

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}

func checkbox(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func headerCheckbox(state selection.HeaderState) string {
	switch state {
	case selection.Checked:
		return "[x]"
	case selection.Indeterminate:
		return "[-]"
	}
	return "[ ]"
}

// cellWidth 平均分配终端宽度，每列至少minCellWidth
func cellWidth(termWidth, columns int) int {
	if columns == 0 {
		return termWidth
	}
	// 每列的边框和内边距占3个字符
	width := (termWidth-checkWidth-4)/columns - 3
	return max(width, minCellWidth)
}

func sortMark(v gridview.View, key string) string {
	if v.State.Sort.Key != key {
		return ""
	}
	if v.State.Sort.Direction == common.Desc {
		return " ▼"
	}
	return " ▲"
}

func renderTable(out io.Writer, grid *gridview.Table) {
	v := grid.View()
	columns := grid.Options().Columns
	width := cellWidth(getTerminalWidth(), len(columns))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := table.Row{headerCheckbox(v.Header)}
	for _, col := range columns {
		header = append(header, runewidth.Truncate(col.Header()+sortMark(v, col.Key), width, "..."))
	}
	t.AppendHeader(header)

	for _, rec := range v.Page.Items {
		row := table.Row{checkbox(grid.IsSelected(rec))}
		for _, col := range columns {
			text, _ := attribute.Text(col, rec)
			text = strings.ReplaceAll(text, "\n", " ")
			row = append(row, runewidth.Truncate(text, width, "..."))
		}
		t.AppendRow(row)
	}
	if v.Empty != gridview.None {
		t.AppendFooter(table.Row{"", v.Empty.Message()})
	}
	t.Render()

	labels := make([]string, 0, len(v.Labels))
	for _, l := range v.Labels {
		if l.Clickable() && l.Number == v.Page.Page {
			labels = append(labels, fmt.Sprintf("[%s]", l))
			continue
		}
		labels = append(labels, l.String())
	}
	fmt.Fprintf(out, "%s    %s\n", v.Summary(), strings.Join(labels, " "))
	if v.Selected > 0 {
		fmt.Fprintf(out, "%d selected\n", v.Selected)
	}
}
