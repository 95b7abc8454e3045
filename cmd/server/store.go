package main

import (
	"context"
	"fmt"

	"github.com/employee-intake/intake-service/internal/core/ports"
	"github.com/employee-intake/intake-service/internal/infrastructure/config"
	"github.com/employee-intake/intake-service/internal/infrastructure/db/mongo"
	"github.com/employee-intake/intake-service/internal/infrastructure/db/postgres"
)

type store struct {
	repo  ports.EmployeeRepository
	close func()
}

// openStore connects the backend selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		repo := mongo.NewEmployeeRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &store{
			repo:  repo,
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
		if err != nil {
			return nil, err
		}
		return &store{
			repo:  postgres.NewEmployeeRepository(pool),
			close: pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
