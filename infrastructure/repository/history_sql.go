package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

const historyTable = "analysis_history"

var historyColumns = []string{
	"id",
	"created_at",
	"prompt",
	"user_question",
	"source_data",
	"result_text",
	"provider",
	"model",
}

type sqlConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type sqlDialect struct {
	name        string
	placeholder squirrel.PlaceholderFormat
	schema      []string
}

var postgresDialect = sqlDialect{
	name:        "postgres",
	placeholder: squirrel.Dollar,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS analysis_history (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			prompt TEXT NOT NULL,
			user_question TEXT NOT NULL DEFAULT '',
			source_data TEXT NOT NULL,
			result_text TEXT NOT NULL,
			provider TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_history_id ON analysis_history (id)`,
	},
}

var sqliteDialect = sqlDialect{
	name:        "sqlite",
	placeholder: squirrel.Question,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS analysis_history (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			prompt TEXT NOT NULL,
			user_question TEXT NOT NULL DEFAULT '',
			source_data TEXT NOT NULL,
			result_text TEXT NOT NULL,
			provider TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_history_id ON analysis_history (id)`,
	},
}

// SQLHistoryRepository guarda o histórico em postgres ou sqlite
type SQLHistoryRepository struct {
	conn    sqlConn
	dialect sqlDialect
}

func NewPostgresHistoryRepository(conn *postgres.Connection) *SQLHistoryRepository {
	return &SQLHistoryRepository{conn: conn, dialect: postgresDialect}
}

func NewSQLiteHistoryRepository(conn *sqlite.Connection) *SQLHistoryRepository {
	return &SQLHistoryRepository{conn: conn, dialect: sqliteDialect}
}

// EnsureSchema cria a tabela do histórico quando ainda não existe
func (r *SQLHistoryRepository) EnsureSchema(ctx context.Context) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range r.dialect.schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrapf(err, "erro ao criar tabela %s", historyTable)
			}
		}
		return nil
	})
}

func (r *SQLHistoryRepository) Load(ctx context.Context) []domain.AnalysisEntry {
	logger := log.ForContext(ctx).WithField("history_driver", r.dialect.name)

	query, args, err := squirrel.
		Select(historyColumns...).
		From(historyTable).
		OrderBy("seq ASC").
		PlaceholderFormat(r.dialect.placeholder).
		ToSql()
	if err != nil {
		logger.WithError(err).Warn("Erro ao construir a query do histórico")
		return []domain.AnalysisEntry{}
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		logger.WithError(err).Warn("Não foi possível ler o histórico. Iniciando um novo histórico.")
		return []domain.AnalysisEntry{}
	}
	defer rows.Close()

	entries := make([]domain.AnalysisEntry, 0)
	for rows.Next() {
		var entry domain.AnalysisEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.Prompt,
			&entry.UserQuestion,
			&entry.SourceData,
			&entry.ResultText,
			&entry.Provider,
			&entry.Model,
		); err != nil {
			logger.WithError(err).Warn("Erro ao escanear entrada do histórico")
			return []domain.AnalysisEntry{}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		logger.WithError(err).Warn("Erro durante a iteração do histórico")
		return []domain.AnalysisEntry{}
	}

	return entries
}

func (r *SQLHistoryRepository) Append(ctx context.Context, entry domain.AnalysisEntry) error {
	query, args, err := squirrel.
		Insert(historyTable).
		Columns(historyColumns...).
		Values(
			entry.ID,
			entry.Timestamp,
			entry.Prompt,
			entry.UserQuestion,
			entry.SourceData,
			entry.ResultText,
			entry.Provider,
			entry.Model,
		).
		PlaceholderFormat(r.dialect.placeholder).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar histórico")
	}

	return nil
}

func (r *SQLHistoryRepository) Clear(ctx context.Context) error {
	query, args, err := squirrel.
		Delete(historyTable).
		PlaceholderFormat(r.dialect.placeholder).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao limpar histórico")
	}

	log.ForContext(ctx).WithField("history_driver", r.dialect.name).Info("Histórico removido")
	return nil
}
