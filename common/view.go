package common

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortState struct {
	Key       string
	Direction Direction
}

func (s SortState) Active() bool {
	return s.Key != ""
}

// Toggle 点击同一列时切换方向，点击新列时从升序开始
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// ViewState 是一个表格实例的瞬时状态
type ViewState struct {
	SearchTerm string
	Filters    map[string]interface{}
	Sort       SortState
	Page       int
	PageSize   int
}

// NewViewState 创建默认状态：无搜索、筛选为中性值、不排序、第一页
func NewViewState(specs []FilterSpec, pageSize int) ViewState {
	filters := make(map[string]interface{}, len(specs))
	for _, spec := range specs {
		filters[spec.Key] = spec.Neutral()
	}
	return ViewState{
		Filters:  filters,
		Sort:     SortState{Direction: Asc},
		Page:     1,
		PageSize: pageSize,
	}
}

func (v ViewState) Clone() ViewState {
	filters := make(map[string]interface{}, len(v.Filters))
	for key, value := range v.Filters {
		filters[key] = value
	}
	v.Filters = filters
	return v
}

func (v ViewState) Searching() bool {
	return strings.TrimSpace(v.SearchTerm) != ""
}

func (v ViewState) Filtering() bool {
	for _, value := range v.Filters {
		if !IsNeutral(value) {
			return true
		}
	}
	return false
}

// HasQuery 有搜索词或者有生效的筛选
func (v ViewState) HasQuery() bool {
	return v.Searching() || v.Filtering()
}

// Marshal 序列化为JSON
func (v ViewState) Marshal() (ret string, err error) {
	ret = "{}"
	if ret, err = sjson.Set(ret, "search", v.SearchTerm); err != nil {
		return
	}
	if ret, err = sjson.Set(ret, "page", v.Page); err != nil {
		return
	}
	if ret, err = sjson.Set(ret, "page_size", v.PageSize); err != nil {
		return
	}
	if ret, err = sjson.Set(ret, "sort.key", v.Sort.Key); err != nil {
		return
	}
	if ret, err = sjson.Set(ret, "sort.direction", string(v.Sort.Direction)); err != nil {
		return
	}
	if ret, err = sjson.SetRaw(ret, "filters", "{}"); err != nil {
		return
	}
	keys := make([]string, 0, len(v.Filters))
	for key := range v.Filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if ret, err = sjson.Set(ret, "filters."+EscapePath(key), v.Filters[key]); err != nil {
			return
		}
	}
	return
}

// ParseViewState 从JSON恢复状态，缺失的字段取base中的值
func ParseViewState(data string, base ViewState) (v ViewState, err error) {
	v = base.Clone()
	if !gjson.Valid(data) {
		err = fmt.Errorf("%w: invalid json", ErrInvalidViewState)
		return
	}
	result := gjson.Parse(data)
	if !result.IsObject() {
		err = fmt.Errorf("%w: not an object", ErrInvalidViewState)
		return
	}
	if search := result.Get("search"); search.Exists() {
		v.SearchTerm = search.String()
	}
	if size := result.Get("page_size"); size.Exists() {
		v.PageSize = int(size.Int())
		if v.PageSize <= 0 {
			err = fmt.Errorf("%w: page_size %d", ErrInvalidViewState, v.PageSize)
			return
		}
	}
	if page := result.Get("page"); page.Exists() {
		v.Page = int(page.Int())
	}
	if v.Page < 1 {
		v.Page = 1
	}
	if key := result.Get("sort.key"); key.Exists() {
		v.Sort.Key = key.String()
	}
	switch Direction(result.Get("sort.direction").String()) {
	case Desc:
		v.Sort.Direction = Desc
	default:
		v.Sort.Direction = Asc
	}
	if filters := result.Get("filters"); filters.Exists() {
		var parsed map[string]interface{}
		if parsed, err = ParseFilterState(filters.Raw); err != nil {
			return
		}
		for key, value := range parsed {
			v.Filters[key] = value
		}
	}
	return
}

// ParseFilterState 解析形如 {"status":"active","tags":["a","b"]} 的筛选状态
func ParseFilterState(data string) (state map[string]interface{}, err error) {
	if !gjson.Valid(data) {
		err = fmt.Errorf("%w: invalid json", ErrInvalidFilterState)
		return
	}
	result := gjson.Parse(data)
	if !result.IsObject() {
		err = fmt.Errorf("%w: not an object", ErrInvalidFilterState)
		return
	}
	state = map[string]interface{}{}
	result.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			err = fmt.Errorf("%w: %s must be a value or a list", ErrInvalidFilterState, key.String())
			return false
		}
		state[key.String()] = value.Value()
		return true
	})
	if err != nil {
		state = nil
	}
	return
}

var pathEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`)

// EscapePath 转义gjson/sjson路径中的特殊字符
func EscapePath(key string) string {
	return pathEscaper.Replace(key)
}
