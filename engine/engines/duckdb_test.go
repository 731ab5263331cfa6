// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

// read_csv_auto accepts local paths as well as URLs, so the DuckDB backend
// is tested against the on-disk fixtures. EnableRemote is skipped: httpfs
// installation needs network access.
func TestDuckDBImport(t *testing.T) {
	b := newDuckDB()
	ctx := context.Background()
	if err := b.Open(ctx); err != nil {
		t.Fatal(err)
	}

	defer b.Close()

	health, err := filepath.Abs(filepath.Join("testdata", "health.csv"))
	if err != nil {
		t.Fatal(err)
	}

	locations, err := filepath.Abs(filepath.Join("testdata", "locations.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if err := b.LoadCSV(ctx, "health", health); err != nil {
		t.Fatal(err)
	}

	if err := b.LoadCSV(ctx, "locations", locations); err != nil {
		t.Fatal(err)
	}

	tables, err := b.Tables(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"health", "locations"}; !reflect.DeepEqual(tables, want) {
		t.Fatalf("tables: got %v, want %v", tables, want)
	}

	cols, err := b.Describe(ctx, "health")
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, c := range cols {
		names = append(names, c.Name)
	}
	if want := []string{"location_key", "life_expectancy", "smoking_prevalence"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("health columns: got %v, want %v", names, want)
	}

	if n := asFloat(t, one(t, b, `SELECT COUNT(*) FROM health`)); n != healthRows {
		t.Fatalf("health count: got %v, want %v", n, healthRows)
	}

	f, err := b.Query(ctx, `
SELECT COUNT(*)
FROM health
JOIN locations ON locations.key = health.location_key`)
	if err != nil {
		t.Fatal(err)
	}

	if n := asFloat(t, f.Rows[0][0]); n != matchedRows {
		t.Fatalf("join count: got %v, want %v", n, matchedRows)
	}
}
