// Package analyzing monta o prompt de análise, chama o serviço de geração e
// registra o resultado no histórico.
package analyzing

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/sales-analysis-agent/infrastructure/repository"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/validating"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

type Service struct {
	history   repository.HistoryRepository
	generator Generator
	options   domain.GenerationOptions
	now       func() time.Time
}

// NewService cria uma nova instância do serviço de análises
func NewService(
	cfg config.LLM,
	history repository.HistoryRepository,
	generator Generator,
) *Service {
	return &Service{
		history:   history,
		generator: generator,
		options: domain.GenerationOptions{
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		now: time.Now,
	}
}

func (s *Service) Analyze(ctx context.Context, request domain.AnalysisRequest) (*domain.AnalysisEntry, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider": s.generator.Name(),
		"model":    s.options.Model,
	})

	if strings.TrimSpace(request.Credential) == "" {
		return nil, NewAnalysisError(ErrMissingCredential, apiErrors.ErrMissingCredential, "Por favor, configure sua API Key")
	}

	if _, err := validating.Parse(request.Data); err != nil {
		return nil, newCausedError(ErrInvalidData, apiErrors.ErrInvalidFormat, err)
	}

	prompt := BuildPrompt(request.Data, request.Question)

	logger.Info("analysis: gerando análise")
	text, err := s.generator.Generate(ctx, request.Credential, prompt, s.options)
	if err != nil {
		return nil, generationError(err)
	}

	id, err := utils.GenerateID(utils.EntryIDLength)
	if err != nil {
		return nil, newCausedError(ErrGenerateID, apiErrors.ErrInternalServer, err)
	}

	entry := domain.AnalysisEntry{
		ID:           id,
		Timestamp:    s.now().Format(time.RFC3339),
		Prompt:       prompt,
		UserQuestion: request.Question,
		SourceData:   request.Data,
		ResultText:   text,
		Provider:     s.generator.Name(),
		Model:        s.options.Model,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		logger.WithError(err).Error("analysis: falha ao salvar no histórico")
		return nil, newCausedError(ErrHistoryWrite, apiErrors.ErrHistoryOperation, err)
	}

	logger.WithField("entry_id", entry.ID).Info("analysis: análise salva no histórico")
	return &entry, nil
}

// AnalyzeQuestion exige uma pergunta preenchida, como o fluxo de perguntas da página
func (s *Service) AnalyzeQuestion(ctx context.Context, request domain.AnalysisRequest) (*domain.AnalysisEntry, error) {
	if strings.TrimSpace(request.Question) == "" {
		return nil, NewAnalysisError(ErrMissingQuestion, apiErrors.ErrMissingRequiredData, "Por favor, digite uma pergunta")
	}

	return s.Analyze(ctx, request)
}

func (s *Service) CheckCredential(ctx context.Context, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return NewAnalysisError(ErrMissingCredential, apiErrors.ErrMissingCredential, "Por favor, configure sua API Key")
	}

	if err := s.generator.CheckModel(ctx, credential, s.options.Model); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"provider": s.generator.Name(),
			"model":    s.options.Model,
		}).WithError(err).Warn("analysis: chave recusada ou modelo indisponível")
		return generationError(err)
	}

	return nil
}

func (s *Service) History(ctx context.Context, limit int) domain.HistoryResponse {
	entries := s.history.Load(ctx)

	recent := make([]domain.AnalysisEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && len(recent) == limit {
			break
		}
		recent = append(recent, entries[i])
	}

	return domain.HistoryResponse{
		Total:   len(entries),
		Entries: recent,
	}
}

func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return newCausedError(ErrHistoryClear, apiErrors.ErrHistoryOperation, err)
	}
	return nil
}
