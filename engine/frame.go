// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"database/sql"
	"fmt"
)

// Frame is a fully materialized query result: column names and rows of
// driver values (int64, float64, string, bool, time.Time or nil).
type Frame struct {
	Columns []string
	Rows    [][]any
}

// Collect drains rows into a Frame, closing them. Byte slices are copied
// into strings because drivers may reuse the backing array between scans.
func Collect(rows *sql.Rows) (f *Frame, err error) {
	defer func() {
		if e := rows.Close(); e != nil && err == nil {
			err = e
		}
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	f = &Frame{Columns: cols}
	for rows.Next() {
		rec := make([]any, len(cols))
		data := make([]any, len(cols))
		for i := range data {
			data[i] = &rec[i]
		}
		if err = rows.Scan(data...); err != nil {
			return nil, err
		}

		for i, v := range rec {
			if b, ok := v.([]byte); ok {
				rec[i] = string(b)
			}
		}
		f.Rows = append(f.Rows, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Col returns the index of the named column, or -1.
func (f *Frame) Col(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Floats returns the named column as float64 values. NULLs are skipped.
func (f *Frame) Floats(name string) ([]float64, error) {
	i := f.Col(name)
	if i < 0 {
		return nil, fmt.Errorf("no column %q", name)
	}

	var vals []float64
	for _, row := range f.Rows {
		if row[i] == nil {
			continue
		}

		v, err := toFloat(row[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}

		vals = append(vals, v)
	}
	return vals, nil
}

// FloatPairs returns two numeric columns in lockstep, dropping every row
// where either value is NULL. This is the shape a scatterplot wants.
func (f *Frame) FloatPairs(xName, yName string) (xs, ys []float64, err error) {
	xi, yi := f.Col(xName), f.Col(yName)
	if xi < 0 {
		return nil, nil, fmt.Errorf("no column %q", xName)
	}
	if yi < 0 {
		return nil, nil, fmt.Errorf("no column %q", yName)
	}

	for _, row := range f.Rows {
		if row[xi] == nil || row[yi] == nil {
			continue
		}

		x, err := toFloat(row[xi])
		if err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", xName, err)
		}

		y, err := toFloat(row[yi])
		if err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", yName, err)
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("not numeric: %T", v)
	}
}
