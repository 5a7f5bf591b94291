/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Catalog for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/suparena/ddbexport/attrvalue"
	"github.com/suparena/ddbexport/errors"
)

// Source is a mock implementation of datastore.Catalog for testing
type Source struct {
	mu        sync.RWMutex
	tables    map[string][]attrvalue.Item
	scanFunc  func(ctx context.Context, table string) ([]attrvalue.Item, error)
	scanError error
	listError error
	scanCalls int
}

// New creates a new mock Source
func New() *Source {
	return &Source{
		tables: make(map[string][]attrvalue.Item),
	}
}

// WithTable registers a table and its items
func (m *Source) WithTable(name string, items ...attrvalue.Item) *Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = items
	return m
}

// WithScanFunc sets a custom scan function for testing
func (m *Source) WithScanFunc(f func(ctx context.Context, table string) ([]attrvalue.Item, error)) *Source {
	m.scanFunc = f
	return m
}

// WithScanError makes Scan return an error
func (m *Source) WithScanError(err error) *Source {
	m.scanError = err
	return m
}

// WithListError makes ListTables return an error
func (m *Source) WithListError(err error) *Source {
	m.listError = err
	return m
}

// Scan returns the items registered for table
func (m *Source) Scan(ctx context.Context, table string) ([]attrvalue.Item, error) {
	m.mu.Lock()
	m.scanCalls++
	m.mu.Unlock()

	if m.scanError != nil {
		return nil, m.scanError
	}
	if m.scanFunc != nil {
		return m.scanFunc(ctx, table)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items, exists := m.tables[table]
	if !exists {
		return nil, errors.NewTransportError("scan", table, errors.NewNotFoundError("table", table))
	}
	out := make([]attrvalue.Item, len(items))
	copy(out, items)
	return out, nil
}

// ListTables returns the registered table names in sorted order
func (m *Source) ListTables(ctx context.Context) ([]string, error) {
	if m.listError != nil {
		return nil, m.listError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ScanCalls returns how many times Scan was invoked
func (m *Source) ScanCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scanCalls
}

// FromEntities marshals Go values into raw items the way the DynamoDB SDK
// would store them, so tests can describe tables with plain structs.
func FromEntities[T any](entities ...T) ([]attrvalue.Item, error) {
	items := make([]attrvalue.Item, 0, len(entities))
	for i, e := range entities {
		av, err := attributevalue.MarshalMap(e)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entity %d: %w", i, err)
		}
		items = append(items, attrvalue.FromSDKItem(av))
	}
	return items, nil
}
