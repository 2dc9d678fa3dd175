package gridview

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"

	"gridview/common"
	"gridview/utils"
)

// 注册了自定义函数的驱动名
const driverName = "sqlite3_gridview"

var registerOnce sync.Once

type customFuncImpl struct {
	impl any
	pure bool
}

func customFunc() map[string]customFuncImpl {
	return map[string]customFuncImpl{
		"record_key": {recordKey, true},
	}
}

func registerDriver() {
	registerOnce.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				for name, f := range customFunc() {
					if err := conn.RegisterFunc(name, f.impl, f.pure); err != nil {
						return err
					}
				}
				return nil
			},
		})
	})
}

// recordKey 计算JSON记录的身份，keys是逗号分隔的身份字段
func recordKey(data string, keys string) (string, error) {
	var rec utils.JSONMap
	if err := rec.Scan(data); err != nil {
		return "", err
	}
	return string(common.Identity(common.Record(rec), strings.Split(keys, ","))), nil
}
