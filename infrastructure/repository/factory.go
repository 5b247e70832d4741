package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
)

// OpenHistory escolhe o backend do histórico conforme HISTORY_DRIVER.
// A função devolvida fecha a conexão com o banco, quando houver.
func OpenHistory(ctx context.Context, cfg *config.Config) (HistoryRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.History.Driver {
	case config.HistoryDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, noop, errors.Wrap(err, "erro ao conectar ao postgres")
		}

		repo := NewPostgresHistoryRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, noop, err
		}
		return repo, conn.Close, nil

	case config.HistoryDriverSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.Database.SQLite)
		if err != nil {
			return nil, noop, errors.Wrap(err, "erro ao abrir o sqlite")
		}

		repo := NewSQLiteHistoryRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, noop, err
		}
		return repo, conn.Close, nil

	default:
		return NewFileHistoryRepository(cfg.History.File), noop, nil
	}
}
