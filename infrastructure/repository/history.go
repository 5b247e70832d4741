// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks

// HistoryRepository guarda as análises concluídas em ordem de inserção.
// Load nunca falha: histórico ausente, ilegível ou corrompido é tratado
// como vazio.
type HistoryRepository interface {
	Load(ctx context.Context) []domain.AnalysisEntry
	Append(ctx context.Context, entry domain.AnalysisEntry) error
	Clear(ctx context.Context) error
}

// fileHistoryRepository grava o histórico inteiro a cada inclusão.
// O mutex protege apenas contra concorrência dentro do processo.
type fileHistoryRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileHistoryRepository(path string) HistoryRepository {
	return &fileHistoryRepository{path: path}
}

func (r *fileHistoryRepository) Load(ctx context.Context) []domain.AnalysisEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *fileHistoryRepository) load(ctx context.Context) []domain.AnalysisEntry {
	logger := log.ForContext(ctx).WithField("history_driver", "file")

	content, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Não foi possível ler o arquivo de histórico. Iniciando um novo histórico.")
		}
		return []domain.AnalysisEntry{}
	}

	if len(content) == 0 {
		return []domain.AnalysisEntry{}
	}

	var entries []domain.AnalysisEntry
	if err := utils.IndentJSON.Unmarshal(content, &entries); err != nil {
		logger.WithError(err).Warn("Arquivo de histórico corrompido. Iniciando um novo histórico.")
		return []domain.AnalysisEntry{}
	}

	if entries == nil {
		return []domain.AnalysisEntry{}
	}

	return entries
}

func (r *fileHistoryRepository) Append(ctx context.Context, entry domain.AnalysisEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := append(r.load(ctx), entry)
	return r.write(entries)
}

func (r *fileHistoryRepository) write(entries []domain.AnalysisEntry) error {
	content, err := utils.IndentJSON.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar histórico")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório do histórico")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário do histórico")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "erro ao gravar histórico")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao gravar histórico")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrap(err, "erro ao gravar histórico")
	}

	return nil
}

func (r *fileHistoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "erro ao limpar histórico")
	}

	log.ForContext(ctx).WithField("history_driver", "file").Info("Histórico removido")
	return nil
}
