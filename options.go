package gridview

import (
	"gridview/common"
	"gridview/query"
)

const DefaultPageSize = 10

var DefaultPageSizeOptions = []int{5, 10, 20, 50, 100}

// Options 是一个表格实例的静态配置
type Options struct {
	Columns []common.Column
	Filters []common.FilterSpec
	Actions []common.Action
	// SearchKeys 为空时自动选择有数据的列
	SearchKeys      []string
	PageSize        int
	PageSizeOptions []int
	IdKeys          []string
	Search          query.SearchOptions

	NoSearch bool
	NoFilter bool
	NoSort   bool
	NoSelect bool

	// Selectable 返回false的行不能被选中
	Selectable        func(common.Record) bool
	OnSelectionChange func(selected []common.Record)

	Logger *Logger
}

func DefaultOptions() Options {
	return Options{
		PageSize:        DefaultPageSize,
		PageSizeOptions: DefaultPageSizeOptions,
		IdKeys:          common.DefaultIdKeys,
		Search:          query.DefaultSearchOptions(),
	}
}

// withDefaults 补全未设置的字段
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PageSize <= 0 {
		o.PageSize = def.PageSize
	}
	if len(o.PageSizeOptions) == 0 {
		o.PageSizeOptions = def.PageSizeOptions
	}
	if len(o.IdKeys) == 0 {
		o.IdKeys = def.IdKeys
	}
	if o.Search.Threshold <= 0 {
		o.Search.Threshold = def.Search.Threshold
	}
	if o.Search.ShortThreshold <= 0 {
		o.Search.ShortThreshold = def.Search.ShortThreshold
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	return o
}
