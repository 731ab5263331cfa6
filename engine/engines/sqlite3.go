// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engines provides the tour's engine backends. Importing it
// registers all of them.
package engines

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sqltour/sqltour/engine"
)

func init() {
	engine.Register(newSQLite3())
}

var _ engine.Engine = (*sqlite3)(nil)

// sqlite3 is the CGo SQLite backend. Remote CSVs are imported by the
// Go-side loader in csvload.go.
type sqlite3 struct {
	db *sql.DB
}

func newSQLite3() *sqlite3 {
	return &sqlite3{}
}

func (b *sqlite3) Name() string { return "sqlite3" }

func (b *sqlite3) Open(ctx context.Context) error {
	return b.open(ctx, b.Name())
}

func (b *sqlite3) open(ctx context.Context, driverName string) error {
	db, err := sql.Open(driverName, "file::memory:")
	if err != nil {
		return err
	}

	// Every pooled connection would otherwise open its own empty
	// in-memory database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}

	b.db = db
	return nil
}

// EnableRemote is a no-op: the importer carries its own HTTP client, so
// remote access needs no engine-side setup.
func (b *sqlite3) EnableRemote(ctx context.Context) error { return nil }

func (b *sqlite3) LoadCSV(ctx context.Context, table, url string) error {
	return importCSV(ctx, b.db, table, url)
}

func (b *sqlite3) Tables(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
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
	return names, nil
}

func (b *sqlite3) Describe(ctx context.Context, table string) ([]engine.Column, error) {
	rows, err := b.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table)))
	if err != nil {
		return nil, err
	}

	f, err := engine.Collect(rows)
	if err != nil {
		return nil, err
	}

	if f.Len() == 0 {
		return nil, fmt.Errorf("no such table: %s", table)
	}

	name, typ := f.Col("name"), f.Col("type")
	var cols []engine.Column
	for _, row := range f.Rows {
		cols = append(cols, engine.Column{
			Name: row[name].(string),
			Type: row[typ].(string),
		})
	}
	return cols, nil
}

func (b *sqlite3) Query(ctx context.Context, query string) (*engine.Frame, error) {
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return engine.Collect(rows)
}

func (b *sqlite3) Close() error {
	if b.db == nil {
		return nil
	}

	return b.db.Close()
}
