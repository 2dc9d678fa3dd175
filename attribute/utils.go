package attribute

import (
	"strings"

	"gridview/utils"
)

// SortKey 返回排序使用的文本，nil返回false
func SortKey(value interface{}) (key string, ok bool) {
	if value == nil {
		return
	}
	return strings.ToLower(utils.String(value)), true
}
