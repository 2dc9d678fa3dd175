package common

// TextExtractor 把列的原始值转换为可搜索、可导出的文本
type TextExtractor interface {
	Text(value interface{}, rec Record) (string, error)
}

type Column struct {
	Key    string
	Label  string
	Render TextExtractor
	// NoSort 为true时点击表头不排序
	NoSort bool
}

func (c Column) Sortable() bool {
	return !c.NoSort
}

// Header 返回表头文本，没有Label时使用Key
func (c Column) Header() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

func ColumnKeys(columns []Column) []string {
	keys := make([]string, 0, len(columns))
	for _, col := range columns {
		keys = append(keys, col.Key)
	}
	return keys
}

func FindColumn(columns []Column, key string) (col Column, ok bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return
}
