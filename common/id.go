package common

import (
	"database/sql/driver"

	"github.com/rs/xid"
)

// ViewId 标识一个表格实例，用于日志关联
type ViewId xid.ID

// ObjectId 是sqlite数据表中每行记录的主键
type ObjectId xid.ID

// Scan 实现 sql.Scanner 接口
func (id *ViewId) Scan(value interface{}) error {
	return (*xid.ID)(id).Scan(value)
}

// Value 实现 driver.Valuer 接口
func (id ViewId) Value() (driver.Value, error) {
	return xid.ID(id).Value()
}

func (vid ViewId) String() string {
	return xid.ID(vid).String()
}

func NewViewId() ViewId {
	return ViewId(xid.New())
}

// Scan 实现 sql.Scanner 接口
func (id *ObjectId) Scan(value interface{}) error {
	return (*xid.ID)(id).Scan(value)
}

// Value 实现 driver.Valuer 接口
func (id ObjectId) Value() (driver.Value, error) {
	return xid.ID(id).Value()
}

func (oid ObjectId) String() string {
	return xid.ID(oid).String()
}

func (oid ObjectId) IsZero() bool {
	return xid.ID(oid).IsZero()
}

func NewObjectId() ObjectId {
	return ObjectId(xid.New())
}
