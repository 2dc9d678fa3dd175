package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"gridview"
	"gridview/common"
)

type sourceFlags struct {
	file  string
	root  string
	db    string
	table string
}

func (f sourceFlags) load(ctx context.Context, idKeys []string) ([]common.Record, error) {
	switch {
	case f.file != "" && f.db != "":
		return nil, fmt.Errorf("--file and --db are mutually exclusive")
	case f.file != "":
		return (&gridview.JSONSource{Path: f.file, Root: f.root}).Fetch(ctx)
	case f.db != "":
		src, err := openSqlite(ctx, f.db, f.table, idKeys)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Fetch(ctx)
	}
	return nil, fmt.Errorf("one of --file or --db is required")
}

func openSqlite(ctx context.Context, dbPath, table string, idKeys []string) (*gridview.SqliteSource, error) {
	src, err := gridview.NewSqliteSource(table, idKeys)
	if err != nil {
		return nil, err
	}
	if err = src.Open(ctx, dbPath); err != nil {
		return nil, errors.Wrapf(err, "open %s", dbPath)
	}
	return src, nil
}
