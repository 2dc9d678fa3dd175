package gridview

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"

	"gridview/attribute"
	"gridview/common"
)

type ExportScope int

const (
	// ExportPage 当前页
	ExportPage ExportScope = iota
	// ExportLive 筛选搜索排序后的全部结果
	ExportLive
	// ExportSelected 选中的记录
	ExportSelected
)

func ParseExportScope(s string) (ExportScope, error) {
	switch strings.ToLower(s) {
	case "", "page":
		return ExportPage, nil
	case "live", "all":
		return ExportLive, nil
	case "selected":
		return ExportSelected, nil
	}
	return ExportPage, fmt.Errorf("unknown export scope %q", s)
}

func (t *Table) exportRows(scope ExportScope) []common.Record {
	switch scope {
	case ExportLive:
		return t.View().Live
	case ExportSelected:
		return t.Selected()
	}
	return t.View().Page.Items
}

// exportColumns keys为空时导出所有列
func (t *Table) exportColumns(keys []string) ([]common.Column, error) {
	if len(keys) == 0 {
		return t.opts.Columns, nil
	}
	ret := make([]common.Column, 0, len(keys))
	for _, key := range keys {
		col, ok := common.FindColumn(t.opts.Columns, key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownColumn, key)
		}
		ret = append(ret, col)
	}
	return ret, nil
}

func (t *Table) cellText(col common.Column, rec common.Record) string {
	text, err := attribute.Text(col, rec)
	if err != nil {
		t.log.LogFallback(context.Background(), col.Key, err)
	}
	return text
}

// ExportCSV 以列标题为表头写出CSV
func (t *Table) ExportCSV(w io.Writer, scope ExportScope, keys []string) error {
	columns, err := t.exportColumns(keys)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header()
	}
	if err = cw.Write(header); err != nil {
		return err
	}
	for _, rec := range t.exportRows(scope) {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = t.cellText(col, rec)
		}
		if err = cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON 导出为对象数组，key为列的Key，值为列的文本
func (t *Table) ExportJSON(scope ExportScope, keys []string) (string, error) {
	columns, err := t.exportColumns(keys)
	if err != nil {
		return "", err
	}
	rows := []string{}
	for _, rec := range t.exportRows(scope) {
		row := "{}"
		for _, col := range columns {
			if row, err = sjson.Set(row, common.EscapePath(col.Key), t.cellText(col, rec)); err != nil {
				return "", err
			}
		}
		rows = append(rows, row)
	}
	return "[" + strings.Join(rows, ",") + "]", nil
}
