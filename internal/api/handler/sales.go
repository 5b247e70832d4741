package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

type salesDataRequest struct {
	Data string `json:"data"`
}

// GetSampleData devolve o conjunto de exemplo usado na primeira visita
func GetSampleData() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, salesDataRequest{Data: domain.DefaultSalesData})
	})
}

// SummarizeSales valida os dados e devolve métricas e séries de gráfico
func SummarizeSales(service aggregating.AggregatingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request salesDataRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		response, err := service.Summarize(request.Data)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Debug("Dados de vendas recusados")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}
