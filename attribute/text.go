package attribute

import (
	"gridview/common"
	"gridview/utils"
)

type defaultExtractor struct{}

// Default 直接把原始值转换为文本
var Default Extractor = defaultExtractor{}

func (defaultExtractor) Text(value interface{}, _ common.Record) (string, error) {
	return utils.String(value), nil
}
