package attribute

import (
	"fmt"

	"gridview/common"
	"gridview/utils"
)

// Extractor 把列的原始值转换为文本，供搜索、排序和导出使用
type Extractor = common.TextExtractor

// Text 取出列在记录上的文本。自定义渲染失败或者panic时返回默认文本和错误，
// 调用方只需要记录错误，文本总是可用的
func Text(col common.Column, rec common.Record) (text string, err error) {
	value, _ := rec.Get(col.Key)
	if col.Render == nil {
		return utils.String(value), nil
	}
	if text, err = safeText(col.Render, value, rec); err != nil {
		return utils.String(value), fmt.Errorf("column %s: %w", col.Key, err)
	}
	return
}

// SearchText 与Text相同，但是没有自定义渲染时对象按结构序列化，供搜索使用
func SearchText(col common.Column, rec common.Record) (text string, err error) {
	value, _ := rec.Get(col.Key)
	if col.Render == nil {
		return utils.Surface(value), nil
	}
	if text, err = safeText(col.Render, value, rec); err != nil {
		return utils.Surface(value), fmt.Errorf("column %s: %w", col.Key, err)
	}
	return
}

func safeText(ext Extractor, value interface{}, rec common.Record) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", common.ErrRenderPanic, r)
		}
	}()
	return ext.Text(value, rec)
}
