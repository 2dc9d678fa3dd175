package query

import (
	"gridview/attribute"
	"gridview/common"
	"gridview/utils"
)

// ErrorFunc 接收列文本提取失败的错误，失败的字段已经退回默认文本
type ErrorFunc func(key string, err error)

// fieldText 取出记录在key上的搜索文本，有对应列时使用列的渲染
func fieldText(columns []common.Column, key string, rec common.Record, onErr ErrorFunc) string {
	col, ok := common.FindColumn(columns, key)
	if !ok {
		v, _ := rec.Get(key)
		return utils.Surface(v)
	}
	text, err := attribute.SearchText(col, rec)
	if err != nil && onErr != nil {
		onErr(key, err)
	}
	return text
}
