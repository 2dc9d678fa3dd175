package query

import (
	"strconv"

	"gridview/common"
)

// 页码窗口最多显示的标签数
const visiblePages = 5

const ellipsis = "…"

type Page struct {
	Items      []common.Record
	Page       int
	TotalPages int
	// Start、End是从1开始的显示范围，没有数据时为0
	Start int
	End   int
	Total int
}

// TotalPages 至少为1
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate 取出第page页的数据，page会被限制在有效范围内。
// pageSize不为正数时所有数据作为一页
func Paginate(records []common.Record, page, pageSize int) Page {
	total := len(records)
	if pageSize <= 0 {
		pageSize = max(total, 1)
	}
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	ret := Page{
		Items:      records[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
	if end > start {
		ret.Start = start + 1
		ret.End = end
	}
	return ret
}

type PageLabel struct {
	Number   int
	Ellipsis bool
}

func (l PageLabel) String() string {
	if l.Ellipsis {
		return ellipsis
	}
	return strconv.Itoa(l.Number)
}

func (l PageLabel) Clickable() bool {
	return !l.Ellipsis
}

// PageLabels 生成页码导航，页数较多时用省略号折叠
func PageLabels(page, totalPages int) []PageLabel {
	if totalPages < 1 {
		totalPages = 1
	}
	page = ClampPage(page, totalPages)
	numbers := func(from, to int) []PageLabel {
		ret := []PageLabel{}
		for i := from; i <= to; i++ {
			ret = append(ret, PageLabel{Number: i})
		}
		return ret
	}
	gap := PageLabel{Ellipsis: true}
	switch {
	case totalPages <= visiblePages:
		return numbers(1, totalPages)
	case page <= 3:
		return append(numbers(1, 4), gap, PageLabel{Number: totalPages})
	case page >= totalPages-2:
		return append([]PageLabel{{Number: 1}, gap}, numbers(totalPages-3, totalPages)...)
	}
	ret := []PageLabel{{Number: 1}, gap}
	ret = append(ret, numbers(page-1, page+1)...)
	return append(ret, gap, PageLabel{Number: totalPages})
}
