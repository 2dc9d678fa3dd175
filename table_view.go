package gridview

import (
	"context"
	"fmt"

	"gridview/common"
	"gridview/query"
	"gridview/selection"
)

// EmptyState 描述当前页为空的原因
type EmptyState int

const (
	None EmptyState = iota
	// NoData 输入数据为空
	NoData
	// NoMatches 有数据但是搜索和筛选后没有结果
	NoMatches
)

func (e EmptyState) String() string {
	switch e {
	case NoData:
		return "no_data"
	case NoMatches:
		return "no_matches"
	}
	return "none"
}

func (e EmptyState) Message() string {
	switch e {
	case NoData:
		return "No data available"
	case NoMatches:
		return "No matching results found"
	}
	return ""
}

// View 是一次派生的结果
type View struct {
	State  common.ViewState
	Page   query.Page
	Labels []query.PageLabel
	// Live 是筛选、搜索、排序之后的全部记录
	Live  []common.Record
	Total int
	Empty EmptyState

	Header   selection.HeaderState
	Selected int
}

// Summary 返回 "Showing X to Y of Z results"
func (v View) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d results", v.Page.Start, v.Page.End, v.Page.Total)
}

// Recompute 依次执行筛选、搜索、排序和分页，不修改任何输入
func Recompute(state common.ViewState, records []common.Record, opts Options) View {
	opts = opts.withDefaults()
	p := newPipeline(opts, opts.Logger)
	live := p.run(context.Background(), state, records)
	return newView(state, records, live, opts.PageSize)
}

func newView(state common.ViewState, records, live []common.Record, defaultPageSize int) View {
	if state.PageSize <= 0 {
		state.PageSize = defaultPageSize
	}
	page := query.Paginate(live, state.Page, state.PageSize)
	state.Page = page.Page
	v := View{
		State:  state,
		Page:   page,
		Labels: query.PageLabels(page.Page, page.TotalPages),
		Live:   live,
		Total:  len(records),
	}
	switch {
	case len(records) == 0:
		v.Empty = NoData
	case len(live) == 0:
		v.Empty = NoMatches
	}
	return v
}
