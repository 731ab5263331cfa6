// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sqltour/sqltour/engine"
)

func TestFrame(t *testing.T) {
	f := &engine.Frame{
		Columns: []string{"location_key", "life_expectancy"},
		Rows: [][]any{
			{"AD", 83.7},
			{"AF", nil},
			{"AT", int64(900)},
		},
	}

	var buf bytes.Buffer
	Frame(&buf, f)
	out := buf.String()

	for _, want := range []string{
		"location_key",
		"life_expectancy",
		"AD",
		"83.7",
		"NULL",
		"900",
		"(3 rows)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{int64(42), "42"},
		{83.7, "83.7"},
		{"x", "x"},
		{true, "true"},
	} {
		if got := formatValue(tc.in); got != tc.want {
			t.Fatalf("%v: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQueryIndent(t *testing.T) {
	var buf bytes.Buffer
	Query(&buf, "SELECT *\nFROM health\n")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}

	for _, l := range lines {
		if !strings.HasPrefix(l, "    ") {
			t.Fatalf("line not indented: %q", l)
		}
	}
}
