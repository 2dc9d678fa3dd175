package gridview

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"gridview/common"
	"gridview/tx"
	"gridview/utils"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SqliteSource 从sqlite数据表读取记录，每行是一个object_id和一个JSON对象
type SqliteSource struct {
	lock   *sync.Mutex
	db     *sql.DB
	table  string
	idKeys []string
}

var _ Source = (*SqliteSource)(nil)

func NewSqliteSource(table string, idKeys []string) (s *SqliteSource, err error) {
	if !tableNamePattern.MatchString(table) {
		err = fmt.Errorf("invalid table name %q", table)
		return
	}
	if len(idKeys) == 0 {
		idKeys = common.DefaultIdKeys
	}
	s = &SqliteSource{
		lock:   &sync.Mutex{},
		table:  table,
		idKeys: idKeys,
	}
	return
}

// Open 打开数据库，数据表不存在时创建
func (s *SqliteSource) Open(ctx context.Context, dbPath string) (err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	registerDriver()
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return errors.Wrap(err, "open sqlite")
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin init")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	createRecordStmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		object_id TEXT PRIMARY KEY,
		record_key TEXT NOT NULL UNIQUE,
		data JSONB NOT NULL
	);`, s.table)
	if _, err = tx.ExecContext(ctx, createRecordStmt); err != nil {
		return errors.Wrapf(err, "create table %s", s.table)
	}
	s.db = db
	return
}

func (s *SqliteSource) ReadTx(ctx context.Context) (rtx tx.ReadTx, err error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		ReadOnly: true,
	})
	if err != nil {
		return
	}
	rtx = &sqliteReadTx{
		ctx: ctx,
		tx:  tx,
	}
	return
}

func (s *SqliteSource) WriteTx(ctx context.Context) (wtx tx.WriteTx, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	wtx = &sqliteWriteTx{sqliteReadTx{
		ctx: ctx,
		tx:  tx,
	}}
	return
}

// Fetch 按写入顺序读取全部记录。没有身份字段的记录使用object_id作为_id
func (s *SqliteSource) Fetch(ctx context.Context) (records []common.Record, err error) {
	rtx, err := s.ReadTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin read")
	}
	defer rtx.Commit()
	stmt := fmt.Sprintf(`SELECT object_id, json(data) FROM %s ORDER BY rowid`, s.table)
	rows, err := rtx.Query(stmt)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", s.table)
	}
	defer rows.Close()
	records = []common.Record{}
	for rows.Next() {
		var oid common.ObjectId
		var data utils.JSONMap
		if err = rows.Scan(&oid, &data); err != nil {
			return nil, errors.Wrap(err, "scan record")
		}
		rec := common.Record(data)
		if rec == nil {
			rec = common.Record{}
		}
		if !hasIdentity(rec, s.idKeys) {
			rec["_id"] = oid.String()
		}
		records = append(records, rec)
	}
	return records, errors.Wrap(rows.Err(), "read rows")
}

// Store 写入记录，身份相同的记录会被覆盖
func (s *SqliteSource) Store(ctx context.Context, records []common.Record) (err error) {
	wtx, err := s.WriteTx(ctx)
	if err != nil {
		return errors.Wrap(err, "begin write")
	}
	defer func() {
		if err != nil {
			wtx.Rollback()
		} else {
			err = wtx.Commit()
		}
	}()
	stmt := fmt.Sprintf(`INSERT INTO %s (object_id, record_key, data)
	VALUES (?, record_key(?, ?), json(?))
	ON CONFLICT(record_key) DO UPDATE SET data = excluded.data`, s.table)
	prepared, err := wtx.Prepare(stmt)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer prepared.Close()
	keys := strings.Join(s.idKeys, ",")
	for _, rec := range records {
		data, verr := utils.JSONMap(rec).Value()
		if verr != nil {
			return errors.Wrap(verr, "encode record")
		}
		if _, err = prepared.ExecContext(ctx, common.NewObjectId(), data, keys, data); err != nil {
			return errors.Wrap(err, "insert record")
		}
	}
	return
}

func (s *SqliteSource) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func hasIdentity(rec common.Record, idKeys []string) bool {
	for _, key := range idKeys {
		if v, ok := rec.Get(key); ok && utils.String(v) != "" {
			return true
		}
	}
	return false
}
