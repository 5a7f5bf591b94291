/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbexport

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/config"
	"github.com/suparena/ddbexport/datastore"
	"github.com/suparena/ddbexport/datastore/ddb"
	"github.com/suparena/ddbexport/datastore/jsonfile"
	"github.com/suparena/ddbexport/errors"
	"github.com/suparena/ddbexport/logging"
)

const (
	// SourceDynamoDB scans live tables.
	SourceDynamoDB = "dynamodb"
	// SourceJSONFile reads a DynamoDB-JSON export file.
	SourceJSONFile = "jsonfile"
)

// SourceFactory opens a transport from configuration. log is the untagged
// root logger; factories add their own component field.
type SourceFactory func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (datastore.Source, error)

// SourceRegistry is a thread-safe set of named source factories.
type SourceRegistry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		factories: make(map[string]SourceFactory),
	}
}

// DefaultSources returns a registry holding the built-in transports.
func DefaultSources() *SourceRegistry {
	r := NewSourceRegistry()
	_ = r.Register(SourceDynamoDB, openDynamoDB)
	_ = r.Register(SourceJSONFile, openJSONFile)
	return r
}

// Register adds a factory under name.
func (r *SourceRegistry) Register(name string, f SourceFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.NewAlreadyExistsError("source", name)
	}
	r.factories[name] = f
	return nil
}

// Remove deletes the factory registered under name.
func (r *SourceRegistry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return errors.NewNotFoundError("source", name)
	}
	delete(r.factories, name)
	return nil
}

// Names returns the registered source names in sorted order.
func (r *SourceRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the source registered under name.
func (r *SourceRegistry) Open(ctx context.Context, name string, cfg *config.Config, log zerolog.Logger) (datastore.Source, error) {
	r.mu.RLock()
	f, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("source", name)
	}
	return f(ctx, cfg, log)
}

// OpenCatalog opens a source and checks that it can list tables.
func (r *SourceRegistry) OpenCatalog(ctx context.Context, name string, cfg *config.Config, log zerolog.Logger) (datastore.Catalog, error) {
	src, err := r.Open(ctx, name, cfg, log)
	if err != nil {
		return nil, err
	}
	catalog, ok := src.(datastore.Catalog)
	if !ok {
		return nil, errors.NewValidationError("source", name+" cannot list tables")
	}
	return catalog, nil
}

func openDynamoDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (datastore.Source, error) {
	cc := ddb.ClientConfig{
		Region:    cfg.AWS.Region,
		Profile:   cfg.AWS.Profile,
		AccessKey: cfg.AWS.AccessKey,
		SecretKey: cfg.AWS.SecretKey,
		Endpoint:  cfg.AWS.Endpoint,
	}
	return ddb.Open(ctx, cc, logging.Component(log, "dynamodb"), cfg.ScanOptions()...)
}

func openJSONFile(_ context.Context, cfg *config.Config, log zerolog.Logger) (datastore.Source, error) {
	if cfg.Input == "" {
		return nil, errors.NewValidationError("input", "a JSON file path is required")
	}
	return jsonfile.New(cfg.Input, logging.Component(log, "jsonfile")), nil
}
