// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// The SQLite engines have no built-in remote table import, so the importer
// does what DuckDB's read_csv_auto does: fetch the resource, look at the
// data to pick a type per column, create the table and bulk-insert.

const insertBatch = 1000

type colType int

const (
	typeInt colType = iota
	typeReal
	typeText
)

func (t colType) String() string {
	switch t {
	case typeInt:
		return "INTEGER"
	case typeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func importCSV(ctx context.Context, db *sql.DB, table, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	r := csv.NewReader(resp.Body)
	recs, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", url, err)
	}

	if len(recs) == 0 {
		return fmt.Errorf("parse %s: empty CSV", url)
	}

	header, rows := recs[0], recs[1:]
	types := inferTypes(header, rows)
	if err := createTable(ctx, db, table, header, types); err != nil {
		return err
	}

	return insertRows(ctx, db, table, types, rows)
}

// inferTypes picks the narrowest type every non-empty value of a column
// fits: INTEGER, then REAL, then TEXT. Columns with no values stay TEXT.
func inferTypes(header []string, rows [][]string) []colType {
	types := make([]colType, len(header))
	seen := make([]bool, len(header))
	for _, row := range rows {
		for i, v := range row {
			if i >= len(types) || v == "" {
				continue
			}

			if !seen[i] {
				seen[i] = true
				types[i] = typeInt
			}

			switch types[i] {
			case typeInt:
				if _, err := strconv.ParseInt(v, 10, 64); err == nil {
					continue
				}
				types[i] = typeReal
				fallthrough
			case typeReal:
				if _, err := strconv.ParseFloat(v, 64); err == nil {
					continue
				}
				types[i] = typeText
			}
		}
	}

	for i := range types {
		if !seen[i] {
			types[i] = typeText
		}
	}
	return types
}

func createTable(ctx context.Context, db *sql.DB, table string, header []string, types []colType) error {
	cols := make([]string, len(header))
	for i, name := range header {
		cols[i] = fmt.Sprintf("%s %s", quoteIdent(name), types[i])
	}

	q := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(cols, ", "))
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	return nil
}

func insertRows(ctx context.Context, db *sql.DB, table string, types []colType, rows [][]string) (err error) {
	marks := strings.Repeat("?, ", len(types))
	ins := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), strings.TrimSuffix(marks, ", "))

	var tx *sql.Tx
	var stmt *sql.Stmt
	data := make([]any, len(types))
	for i, row := range rows {
		if i%insertBatch == 0 {
			if i != 0 {
				if err = tx.Commit(); err != nil {
					return err
				}
			}

			if tx, err = db.BeginTx(ctx, nil); err != nil {
				return err
			}

			if stmt, err = tx.PrepareContext(ctx, ins); err != nil {
				return err
			}
		}

		for j := range data {
			if j < len(row) {
				data[j], err = convert(row[j], types[j])
				if err != nil {
					return fmt.Errorf("%s row %d: %w", table, i+1, err)
				}
			} else {
				data[j] = nil
			}
		}
		if _, err = stmt.ExecContext(ctx, data...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	if tx == nil {
		return nil
	}

	return tx.Commit()
}

// convert turns a CSV field into a driver value of the column's inferred
// type. Empty fields become NULL.
func convert(v string, t colType) (any, error) {
	if v == "" {
		return nil, nil
	}

	switch t {
	case typeInt:
		return strconv.ParseInt(v, 10, 64)
	case typeReal:
		return strconv.ParseFloat(v, 64)
	default:
		return v, nil
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
