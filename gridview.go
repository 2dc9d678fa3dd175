package gridview

import (
	"context"

	"gridview/common"
)

// Grid 是一个可交互的表格视图
type Grid interface {
	Id() common.ViewId
	State() common.ViewState
	SetState(common.ViewState) error

	// 数据
	SetData([]common.Record)
	Data() []common.Record

	// 搜索、筛选、排序
	SetSearch(string) error
	ClearSearch() error
	SetFilter(key string, value interface{}) error
	ToggleFilterOption(key string, option interface{}) error
	ResetFilters()
	ToggleSort(key string) error

	// 分页
	SetPage(int)
	NextPage()
	PrevPage()
	SetPageSize(int) error
	PageSizeOptions() []int

	// 选择和批量操作
	Toggle(rec common.Record, included bool) error
	ToggleAllOnPage(included bool) error
	ClearSelection()
	IsSelected(common.Record) bool
	Selected() []common.Record
	Dispatch(ctx context.Context, action string) error

	View() View
}
