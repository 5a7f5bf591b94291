/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/ddbexport/attrvalue"
)

// Source yields every raw item of one table, with pagination already resolved.
type Source interface {
	Scan(ctx context.Context, table string) ([]attrvalue.Item, error)
}

// TableLister lists the tables a Source can scan.
type TableLister interface {
	ListTables(ctx context.Context) ([]string, error)
}

// Catalog is a Source that can also enumerate its tables.
type Catalog interface {
	Source
	TableLister
}
