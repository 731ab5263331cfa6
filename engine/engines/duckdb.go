// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/sqltour/sqltour/engine"
)

func init() {
	engine.Register(newDuckDB())
}

var _ engine.Engine = (*duckdb)(nil)

// duckdb is the analytical backend. Unlike the SQLite backends it imports
// remote CSVs inside the engine, through the httpfs extension and
// read_csv_auto.
type duckdb struct {
	db *sql.DB
}

func newDuckDB() *duckdb {
	return &duckdb{}
}

func (b *duckdb) Name() string { return "duckdb" }

func (b *duckdb) Open(ctx context.Context) error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}

	b.db = db
	return nil
}

func (b *duckdb) EnableRemote(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, `INSTALL httpfs; LOAD httpfs;`); err != nil {
		return fmt.Errorf("httpfs: %w", err)
	}

	return nil
}

func (b *duckdb) LoadCSV(ctx context.Context, table, url string) error {
	q := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM read_csv_auto(%s)",
		quoteIdent(table), quoteString(url))
	if _, err := b.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}

	return nil
}

func (b *duckdb) Tables(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, `SHOW TABLES`)
	if err != nil {
		return nil, err
	}

	f, err := engine.Collect(rows)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, row := range f.Rows {
		names = append(names, row[0].(string))
	}
	sort.Strings(names)
	return names, nil
}

func (b *duckdb) Describe(ctx context.Context, table string) ([]engine.Column, error) {
	rows, err := b.db.QueryContext(ctx, "DESCRIBE "+quoteIdent(table))
	if err != nil {
		return nil, err
	}

	f, err := engine.Collect(rows)
	if err != nil {
		return nil, err
	}

	name, typ := f.Col("column_name"), f.Col("column_type")
	var cols []engine.Column
	for _, row := range f.Rows {
		cols = append(cols, engine.Column{
			Name: row[name].(string),
			Type: row[typ].(string),
		})
	}
	return cols, nil
}

func (b *duckdb) Query(ctx context.Context, query string) (*engine.Frame, error) {
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return engine.Collect(rows)
}

func (b *duckdb) Close() error {
	if b.db == nil {
		return nil
	}

	return b.db.Close()
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
