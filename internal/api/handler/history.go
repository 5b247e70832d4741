package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

// ListHistory devolve as análises mais recentes primeiro. Sem ?limit usa o
// limite configurado; limit=0 devolve todas.
func ListHistory(analyzer analyzing.Analyzer, defaultLimit int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLimit

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", map[string]any{"limit": raw})
				return
			}
			limit = parsed
		}

		writeJSON(w, http.StatusOK, analyzer.History(r.Context(), limit))
	})
}

func ClearHistory(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := analyzer.ClearHistory(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao limpar histórico")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"message": "Histórico limpo!"})
	})
}
