// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine abstracts the in-process SQL engines the tour can run on.
//
// Backends live in the engines subpackage and register themselves on import:
//
//	import (
//		"github.com/sqltour/sqltour/engine"
//
//		_ "github.com/sqltour/sqltour/engine/engines"
//	)
//
//	eng := engine.Open("sqlite")
package engine

import (
	"context"
	"fmt"
	"sort"
)

// Column is one attribute of a relation: its name and the type the engine
// inferred for it during import.
type Column struct {
	Name string
	Type string
}

// Engine is a single session with an in-process SQL engine. Sessions are
// in-memory; their tables die with Close. Methods are not safe for
// concurrent use, the tour is strictly sequential.
type Engine interface {
	Name() string

	// Open establishes the in-memory session.
	Open(ctx context.Context) error

	// EnableRemote arms the engine's remote-file-access capability so
	// that subsequent LoadCSV calls may read HTTP(S) sources.
	EnableRemote(ctx context.Context) error

	// LoadCSV creates table from the CSV resource at url, inferring the
	// schema from the data.
	LoadCSV(ctx context.Context, table, url string) error

	// Tables lists the table names present in the session.
	Tables(ctx context.Context) ([]string, error)

	// Describe lists the columns of table.
	Describe(ctx context.Context, table string) ([]Column, error)

	// Query executes a literal SQL statement and materializes the full
	// result set.
	Query(ctx context.Context, query string) (*Frame, error)

	Close() error
}

var registered = map[string]Engine{}

// Register makes an engine available under its Name. It panics when the
// name is taken; backends register from init.
func Register(e Engine) {
	nm := e.Name()
	if _, ok := registered[nm]; ok {
		panic(fmt.Errorf("already registered: %s", nm))
	}

	registered[nm] = e
}

// Open returns the engine registered under name, or nil.
func Open(name string) Engine {
	return registered[name]
}

// List returns the registered engine names, sorted.
func List() []string {
	r := []string{}
	for k := range registered {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
