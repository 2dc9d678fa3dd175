package common

import (
	"fmt"
	"strings"

	"gridview/utils"
)

type FilterOption struct {
	Value interface{}
	Label string
}

// FilterSpec 描述一个可筛选的维度，当前选中的值保存在ViewState.Filters中
type FilterSpec struct {
	Key         string
	Options     []FilterOption
	Multi       bool
	Placeholder string
}

// Neutral 返回不做任何筛选的值
func (f FilterSpec) Neutral() interface{} {
	if f.Multi {
		return []interface{}{}
	}
	return ""
}

// MatchOptions 按label过滤选项，忽略大小写
func (f FilterSpec) MatchOptions(term string) []FilterOption {
	term = strings.ToLower(term)
	ret := []FilterOption{}
	for _, opt := range f.Options {
		if strings.Contains(strings.ToLower(opt.Label), term) {
			ret = append(ret, opt)
		}
	}
	return ret
}

// DisplayValue 返回筛选控件上显示的文本
func (f FilterSpec) DisplayValue(value interface{}) string {
	if f.Multi {
		list, _ := utils.List(value)
		if len(list) > 0 {
			return fmt.Sprintf("%d selected", len(list))
		}
		return f.Placeholder
	}
	for _, opt := range f.Options {
		if utils.Equal(opt.Value, value) {
			return opt.Label
		}
	}
	return f.Placeholder
}

// Toggle 在多选筛选值中加入或移除一个选项
func (f FilterSpec) Toggle(current interface{}, option interface{}) interface{} {
	if !f.Multi {
		return option
	}
	list, _ := utils.List(current)
	ret := make([]interface{}, 0, len(list)+1)
	found := false
	for _, v := range list {
		if utils.Equal(v, option) {
			found = true
			continue
		}
		ret = append(ret, v)
	}
	if !found {
		ret = append(ret, option)
	}
	return ret
}

// IsNeutral 判断筛选值是否为空串、nil或者空集合
func IsNeutral(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	if list, ok := utils.List(value); ok {
		return len(list) == 0
	}
	return false
}

func FindFilter(specs []FilterSpec, key string) (spec FilterSpec, ok bool) {
	for _, s := range specs {
		if s.Key == key {
			return s, true
		}
	}
	return
}
