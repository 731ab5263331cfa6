// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tour walks a learner through SQL fundamentals against a
// public-health dataset: importing CSVs into an in-process engine,
// selecting, filtering, aggregating, joining, grouping, and finally
// pulling a result set back into Go to plot it.
//
// The lesson is a fixed, strictly sequential list of steps. Any failing
// step aborts the run; there are no retries and no fallback sources.
package tour

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/sqltour/sqltour/engine"
	"github.com/sqltour/sqltour/render"
)

// Default dataset: Google COVID-19 Open Data, v3.
const (
	DefaultHealthURL    = "https://storage.googleapis.com/covid19-open-data/v3/health.csv"
	DefaultLocationsURL = "https://storage.googleapis.com/covid19-open-data/v3/index.csv"
)

// Options configure a tour run. Zero values fall back to the public
// dataset and the working directory.
type Options struct {
	HealthURL    string
	LocationsURL string

	// PlotDir receives scatter.png and scatter_filtered.png.
	PlotDir string

	Log *slog.Logger
}

// Runner executes the lesson against one engine session, writing the
// narration and results to Out.
type Runner struct {
	eng  engine.Engine
	out  io.Writer
	opts Options

	step int
}

func New(eng engine.Engine, out io.Writer, opts Options) *Runner {
	if opts.HealthURL == "" {
		opts.HealthURL = DefaultHealthURL
	}
	if opts.LocationsURL == "" {
		opts.LocationsURL = DefaultLocationsURL
	}
	if opts.PlotDir == "" {
		opts.PlotDir = "."
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	return &Runner{eng: eng, out: out, opts: opts}
}

// Run executes every step in order. The engine session is closed on the
// way out regardless of the outcome.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := r.eng.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	steps := []struct {
		title string
		fn    func(context.Context) error
	}{
		{"Connecting to an embedded database", r.connect},
		{"Reaching out to remote data", r.enableRemote},
		{"Importing the dataset", r.load},
		{"What tables do we have?", r.listTables},
		{"What is inside a table?", r.describeTables},
		{"A first SELECT", r.firstSelect},
		{"Aggregation", r.aggregate},
		{"Filtering the outlier away", r.filter},
		{"Joining the two tables", r.join},
		{"Grouping", r.group},
		{"From SQL to a picture", r.plot},
	}

	for i, s := range steps {
		r.step = i + 1
		render.Section(r.out, r.step, s.title)
		r.opts.Log.Info("step", "n", r.step, "title", s.title)
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("step %d (%s): %w", r.step, s.title, err)
		}
	}
	return nil
}

// show runs a literal query, echoing it and its result table.
func (r *Runner) show(ctx context.Context, q string) (*engine.Frame, error) {
	render.Query(r.out, q)
	f, err := r.eng.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	render.Frame(r.out, f)
	return f, nil
}

func (r *Runner) connect(ctx context.Context) error {
	render.Prose(r.out, proseConnect)
	if err := r.eng.Open(ctx); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "connected: %s (in-memory)\n", r.eng.Name())
	return nil
}

func (r *Runner) enableRemote(ctx context.Context) error {
	render.Prose(r.out, proseRemote)
	return r.eng.EnableRemote(ctx)
}

func (r *Runner) load(ctx context.Context) error {
	render.Prose(r.out, proseLoad)
	for _, t := range []struct{ name, url string }{
		{"health", r.opts.HealthURL},
		{"locations", r.opts.LocationsURL},
	} {
		if err := r.eng.LoadCSV(ctx, t.name, t.url); err != nil {
			return err
		}

		f, err := r.eng.Query(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", t.name))
		if err != nil {
			return err
		}

		fmt.Fprintf(r.out, "imported %s: %v rows\n", t.name, f.Rows[0][0])
	}
	return nil
}

func (r *Runner) listTables(ctx context.Context) error {
	render.Prose(r.out, proseTables)
	names, err := r.eng.Tables(ctx)
	if err != nil {
		return err
	}

	for _, n := range names {
		fmt.Fprintf(r.out, "  %s\n", n)
	}
	return nil
}

func (r *Runner) describeTables(ctx context.Context) error {
	render.Prose(r.out, proseDescribe)
	for _, t := range []string{"health", "locations"} {
		fmt.Fprintf(r.out, "%s:\n", t)
		cols, err := r.eng.Describe(ctx, t)
		if err != nil {
			return err
		}

		f := &engine.Frame{Columns: []string{"column", "type"}}
		for _, c := range cols {
			f.Rows = append(f.Rows, []any{c.Name, c.Type})
		}
		render.Frame(r.out, f)
	}
	return nil
}

func (r *Runner) firstSelect(ctx context.Context) error {
	render.Prose(r.out, proseSelect)
	if _, err := r.show(ctx, QueryPeek); err != nil {
		return err
	}

	render.Prose(r.out, proseProject)
	_, err := r.show(ctx, QueryProject)
	return err
}

func (r *Runner) aggregate(ctx context.Context) error {
	render.Prose(r.out, proseAggregate)
	if _, err := r.show(ctx, QueryCount); err != nil {
		return err
	}

	if _, err := r.show(ctx, QueryLifeStats); err != nil {
		return err
	}

	render.Prose(r.out, proseOutlier)
	return nil
}

func (r *Runner) filter(ctx context.Context) error {
	render.Prose(r.out, proseFilter)
	if _, err := r.show(ctx, QueryLifeStatsFiltered); err != nil {
		return err
	}

	render.Prose(r.out, proseOrder)
	_, err := r.show(ctx, QueryTopLife)
	return err
}

func (r *Runner) join(ctx context.Context) error {
	render.Prose(r.out, proseJoin)
	_, err := r.show(ctx, QueryJoin)
	return err
}

func (r *Runner) group(ctx context.Context) error {
	render.Prose(r.out, proseGroup)
	_, err := r.show(ctx, QueryGroup)
	return err
}

func (r *Runner) plot(ctx context.Context) error {
	render.Prose(r.out, prosePlot)
	for _, p := range []struct {
		query, title, file string
	}{
		{QueryScatter, "smoking vs life expectancy", "scatter.png"},
		{QueryScatterFiltered, "smoking vs life expectancy (< 100 years)", "scatter_filtered.png"},
	} {
		render.Query(r.out, p.query)
		f, err := r.eng.Query(ctx, p.query)
		if err != nil {
			return err
		}

		xs, ys, err := f.FloatPairs("smoking_prevalence", "life_expectancy")
		if err != nil {
			return err
		}

		s := &render.Scatter{
			Title: p.title,
			XName: "smoking_prevalence",
			YName: "life_expectancy",
		}
		fn := filepath.Join(r.opts.PlotDir, p.file)
		if err := s.RenderFile(xs, ys, fn); err != nil {
			return err
		}

		fmt.Fprintf(r.out, "wrote %s (%d points)\n", fn, len(xs))
	}
	return nil
}
