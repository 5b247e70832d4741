package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/validating"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ApiKeyHeader permite enviar a chave de API sem sessão
const ApiKeyHeader = "X-Api-Key"

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return errors.New("corpo da requisição vazio")
	}
	return json.NewDecoder(r.Body).Decode(target)
}

// writeUsecaseError traduz os erros dos casos de uso para a resposta padronizada
func writeUsecaseError(w http.ResponseWriter, err error) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		var details any
		if analysisErr.Cause != nil {
			details = map[string]any{"cause": analysisErr.Cause.Error()}
		}
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), details)
		return
	}

	var validationErr *validating.ValidationError
	if errors.As(err, &validationErr) {
		details := map[string]any{}
		if validationErr.Index >= 0 {
			details["index"] = validationErr.Index
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
