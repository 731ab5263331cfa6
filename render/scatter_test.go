// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestScatterRender(t *testing.T) {
	s := &Scatter{
		Title: "smoking vs life expectancy",
		XName: "smoking_prevalence",
		YName: "life_expectancy",
	}

	xs := []float64{29.0, 28.9, 28.7, 26.7, 21.8, 29.4, 15.0}
	ys := []float64{83.7, 77.8, 78.5, 74.9, 76.5, 900, 70.1}

	var buf bytes.Buffer
	if err := s.Render(xs, ys, &buf); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatal("not a PNG")
	}
}

func TestScatterRenderErrors(t *testing.T) {
	s := &Scatter{}

	var buf bytes.Buffer
	if err := s.Render([]float64{1}, []float64{1, 2}, &buf); err == nil {
		t.Fatal("expected an error for mismatched series")
	}

	if err := s.Render(nil, nil, &buf); err == nil {
		t.Fatal("expected an error for empty series")
	}
}

func TestScatterRenderFile(t *testing.T) {
	s := &Scatter{Title: "t", XName: "x", YName: "y"}
	fn := filepath.Join(t.TempDir(), "plots", "scatter.png")

	if err := s.RenderFile([]float64{1, 2, 3}, []float64{3, 1, 2}, fn); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatal("not a PNG")
	}
}
