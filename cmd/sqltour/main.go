// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sqltour runs a guided tour of SQL fundamentals over a
// public-health dataset, using an in-process database engine.
//
// Usage:
//
//	sqltour [-engine name] [-config file] [-out dir] [-v]
//	sqltour -list
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sqltour/sqltour/config"
	"github.com/sqltour/sqltour/engine"
	_ "github.com/sqltour/sqltour/engine/engines"
	"github.com/sqltour/sqltour/internal/logging"
	"github.com/sqltour/sqltour/tour"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	engName := flag.String("engine", "", "Engine backend to run on. Overrides the config file.")
	cfgPath := flag.String("config", "", "Optional YAML configuration file.")
	outDir := flag.String("out", "", "Directory for rendered plots. Overrides the config file.")
	health := flag.String("health", "", "Health CSV URL. Overrides the config file.")
	locations := flag.String("locations", "", "Locations CSV URL. Overrides the config file.")
	list := flag.Bool("list", false, "List registered engines.")
	verbose := flag.Bool("v", false, "Verbose logging.")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(engine.List(), "\n"))
		return nil
	}

	log := logging.SetupLogger(*verbose)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *engName != "" {
		cfg.Engine = *engName
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *health != "" {
		cfg.HealthURL = *health
	}
	if *locations != "" {
		cfg.LocationsURL = *locations
	}

	eng := engine.Open(cfg.Engine)
	if eng == nil {
		return fmt.Errorf("no such engine: %s (have %s)", cfg.Engine, strings.Join(engine.List(), ", "))
	}

	r := tour.New(eng, os.Stdout, tour.Options{
		HealthURL:    cfg.HealthURL,
		LocationsURL: cfg.LocationsURL,
		PlotDir:      cfg.OutDir,
		Log:          log,
	})
	return r.Run(context.Background())
}
