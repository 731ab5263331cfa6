// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

var dotColor = drawing.ColorFromHex("2e86c1")

// Scatter plots two numeric columns against each other.
type Scatter struct {
	Title string
	XName string
	YName string
}

// Render writes the plot as PNG.
func (s *Scatter) Render(xs, ys []float64, w io.Writer) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("mismatched series: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	graph := s.newGraph()
	graph.Series = []chart.Series{
		&chart.ContinuousSeries{
			Style: chart.Style{
				Show:        true,
				StrokeWidth: chart.Disabled,
				DotWidth:    2.5,
				DotColor:    dotColor,
			},
			XValues: xs,
			YValues: ys,
		},
	}

	return graph.Render(chart.PNG, w)
}

// RenderFile renders into filename, creating parent directories.
func (s *Scatter) RenderFile(xs, ys []float64, filename string) error {
	if err := os.MkdirAll(path.Dir(filename), 0775); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Render(xs, ys, f)
}

func (s *Scatter) newGraph() *chart.Chart {
	return &chart.Chart{
		Title: s.Title,
		TitleStyle: chart.Style{
			Show: true,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:  20,
				Left: 20,
			},
		},
		XAxis: chart.XAxis{
			Style:     chart.StyleShow(),
			NameStyle: chart.StyleShow(),
			Name:      s.XName,
		},
		YAxis: chart.YAxis{
			Style:          chart.StyleShow(),
			NameStyle:      chart.StyleShow(),
			Name:           s.YName,
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
	}
}
