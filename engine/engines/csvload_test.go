// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestInferTypes(t *testing.T) {
	header := []string{"i", "r", "promoted", "s", "mixed", "empty"}
	rows := [][]string{
		{"1", "1.5", "1", "x", "1", ""},
		{"", "2", "2.5", "y", "z", ""},
		{"-3", "1e3", "", "1.5", "2", ""},
	}

	got := inferTypes(header, rows)
	want := []colType{typeInt, typeReal, typeReal, typeText, typeText, typeText}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestConvert(t *testing.T) {
	if v, err := convert("42", typeInt); err != nil || v != int64(42) {
		t.Fatalf("int: got %v, %v", v, err)
	}

	if v, err := convert("1.5", typeReal); err != nil || v != 1.5 {
		t.Fatalf("real: got %v, %v", v, err)
	}

	if v, err := convert("x", typeText); err != nil || v != "x" {
		t.Fatalf("text: got %v, %v", v, err)
	}

	// Empty fields become NULL whatever the column type.
	for _, typ := range []colType{typeInt, typeReal, typeText} {
		if v, err := convert("", typ); err != nil || v != nil {
			t.Fatalf("%v empty: got %v, %v", typ, v, err)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent(`loc"key`); got != `"loc""key"` {
		t.Fatalf("got %s", got)
	}
}

func TestImportCSVErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.csv":
			http.NotFound(w, r)
		case "/empty.csv":
			// 200 with no content at all
		case "/ragged.csv":
			w.Write([]byte("a,b\n1,2,3\n"))
		}
	}))
	defer srv.Close()

	b := newSQLite()
	ctx := context.Background()
	if err := b.Open(ctx); err != nil {
		t.Fatal(err)
	}

	defer b.Close()

	for _, p := range []string{"/missing.csv", "/empty.csv", "/ragged.csv"} {
		if err := importCSV(ctx, b.db, "t", srv.URL+p); err == nil {
			t.Fatalf("%s: expected an error", p)
		}
	}
}

func TestImportCSVNulls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("k,v\na,1\nb,\nc,3\n"))
	}))
	defer srv.Close()

	b := newSQLite()
	ctx := context.Background()
	if err := b.Open(ctx); err != nil {
		t.Fatal(err)
	}

	defer b.Close()

	if err := importCSV(ctx, b.db, "t", srv.URL+"/t.csv"); err != nil {
		t.Fatal(err)
	}

	f, err := b.Query(ctx, `SELECT COUNT(*) FROM t WHERE v IS NULL`)
	if err != nil {
		t.Fatal(err)
	}

	if n := f.Rows[0][0].(int64); n != 1 {
		t.Fatalf("NULL rows: got %d, want 1", n)
	}
}
