package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/middleware"
)

type analysisRequest struct {
	Data             string `json:"data"`
	Question         string `json:"question"`
	QuestionRequired bool   `json:"question_required"`
}

// resolveCredential prefere o cabeçalho X-Api-Key e cai para a chave da sessão
func resolveCredential(r *http.Request, sessions sessioning.SessionService) string {
	if key := strings.TrimSpace(r.Header.Get(ApiKeyHeader)); key != "" {
		return key
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return ""
	}

	session, ok := sessions.Get(sessionID)
	if !ok {
		return ""
	}
	return session.Credential
}

// CreateAnalysis gera uma análise e a registra no histórico
func CreateAnalysis(analyzer analyzing.Analyzer, sessions sessioning.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body analysisRequest
		if err := decodeBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request := domain.AnalysisRequest{
			Credential: resolveCredential(r, sessions),
			Data:       body.Data,
			Question:   body.Question,
		}

		analyze := analyzer.Analyze
		if body.QuestionRequired {
			analyze = analyzer.AnalyzeQuestion
		}

		entry, err := analyze(r.Context(), request)
		if err != nil {
			logger.WithError(err).Warn("analysis: análise não gerada")
			writeUsecaseError(w, err)
			return
		}

		logger.WithField("entry_id", entry.ID).Info("analysis: análise gerada")
		writeJSON(w, http.StatusCreated, entry)
	})
}
