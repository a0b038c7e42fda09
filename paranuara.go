// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package paranuara

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/paranuara/config"
	"github.com/poiesic/paranuara/ingestion"
	"github.com/poiesic/paranuara/query"
	"github.com/poiesic/paranuara/storage"
	"github.com/poiesic/paranuara/storage/badger"
	"github.com/poiesic/paranuara/storage/memory"
)

// ErrConfigRequired is returned by Open when cfg is nil.
var ErrConfigRequired = errors.New("config is required")

// Database is a loaded dataset behind the backend picked by the configuration.
type Database struct {
	repo    storage.Repository
	query   *query.Service
	dataset *ingestion.Dataset
	logger  *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the database and everything it builds.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// Open loads the JSON files named by cfg and puts them behind the configured backend.
func Open(ctx context.Context, cfg *config.Config, opts ...DatabaseOption) (*Database, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &databaseOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	logger := options.logger

	dataset, err := LoadDataset(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var repo storage.Repository
	switch cfg.Backend {
	case config.BackendBadger:
		repo, err = openBadger(ctx, cfg, dataset, logger)
	default:
		repo, err = memory.NewRepository(dataset.Companies, dataset.People)
	}
	if err != nil {
		return nil, err
	}

	svc, err := query.NewService(repo, query.WithLogger(logger))
	if err != nil {
		repo.Close()
		return nil, err
	}

	logger.Info("dataset loaded",
		"backend", cfg.Backend,
		"companies", len(dataset.Companies),
		"people", len(dataset.People))

	return &Database{
		repo:    repo,
		query:   svc,
		dataset: dataset,
		logger:  logger,
	}, nil
}

// LoadDataset decodes the companies and people files named by cfg.
func LoadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ingestion.Dataset, error) {
	loaderOpts := []ingestion.Option{ingestion.WithLogger(logger)}
	if cfg.PoolSize > 0 {
		loaderOpts = append(loaderOpts, ingestion.WithPoolSize(cfg.PoolSize))
	}
	loader, err := ingestion.NewLoader(loaderOpts...)
	if err != nil {
		return nil, err
	}
	defer loader.Release()

	return loader.LoadFiles(ctx, cfg.CompaniesFile, cfg.PeopleFile)
}

func openBadger(ctx context.Context, cfg *config.Config, dataset *ingestion.Dataset, logger *slog.Logger) (*badger.Repository, error) {
	backend, err := badger.OpenBackendWithLogger(cfg.BadgerPath, cfg.BadgerPath == "", logger)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	if err := repo.Load(ctx, dataset.Companies, dataset.People, nil); err != nil {
		repo.Close()
		return nil, fmt.Errorf("syncing document store: %w", err)
	}
	return repo, nil
}

// Close releases the backend.
func (db *Database) Close() error {
	if err := db.repo.Close(); err != nil {
		db.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}

// Query returns the query service over the loaded dataset.
func (db *Database) Query() *query.Service {
	return db.query
}

// Repository returns the backend holding the dataset.
func (db *Database) Repository() storage.Repository {
	return db.repo
}

// Dataset returns the records as decoded from the input files.
func (db *Database) Dataset() *ingestion.Dataset {
	return db.dataset
}
