package gridview

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"gridview/common"
)

// Source 为表格提供数据
type Source interface {
	Fetch(ctx context.Context) ([]common.Record, error)
}

// JSONSource 从JSON数组读取记录。Path不为空时读取文件，否则使用Data。
// Root是数组在文档中的gjson路径，为空表示文档本身就是数组
type JSONSource struct {
	Path string
	Data []byte
	Root string
}

var _ Source = (*JSONSource)(nil)

func (s *JSONSource) Fetch(ctx context.Context) (records []common.Record, err error) {
	data := s.Data
	if s.Path != "" {
		if data, err = os.ReadFile(s.Path); err != nil {
			return nil, errors.Wrapf(err, "read %s", s.Path)
		}
	}
	return ParseRecords(data, s.Root)
}

// ParseRecords 解析JSON对象数组
func ParseRecords(data []byte, root string) (records []common.Record, err error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json")
	}
	result := gjson.ParseBytes(data)
	if root != "" {
		result = result.Get(root)
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("expected a json array of records")
	}
	records = []common.Record{}
	result.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			err = fmt.Errorf("record %d is not an object", len(records))
			return false
		}
		m, _ := value.Value().(map[string]interface{})
		records = append(records, common.Record(m))
		return true
	})
	if err != nil {
		return nil, err
	}
	return
}
