// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

import (
	"context"

	_ "github.com/glebarez/go-sqlite"

	"github.com/sqltour/sqltour/engine"
)

func init() {
	engine.Register(newSQLite())
}

var _ engine.Engine = (*sqlite)(nil)

// sqlite is the pure-Go SQLite backend, the tour's default. It shares the
// CGo backend's behavior and differs only in the driver it opens.
type sqlite struct {
	*sqlite3
}

func newSQLite() *sqlite {
	return &sqlite{newSQLite3()}
}

func (b *sqlite) Name() string { return "sqlite" }

func (b *sqlite) Open(ctx context.Context) error {
	return b.open(ctx, b.Name())
}
