package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de credencial
	ErrMissingCredential = "AUTH_001" // Chave de API não informada
	ErrInvalidCredential = "AUTH_002" // Chave de API recusada pelo serviço
	ErrInvalidSession    = "AUTH_003" // Sessão inexistente ou expirada

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // JSON de vendas inválido

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrHistoryOperation = "SRV_002" // Falha ao gravar o histórico
	ErrExternalService  = "SRV_003" // Erro no serviço de geração
	ErrCommunication    = "SRV_004" // Falha de rede com o serviço de geração
	ErrQuotaExceeded    = "SRV_005" // Cota do serviço de geração esgotada
	ErrModelNotFound    = "SRV_006" // Modelo não disponível para a chave
)

var httpStatusMap = map[string]int{
	ErrMissingCredential:   http.StatusUnauthorized,
	ErrInvalidCredential:   http.StatusUnauthorized,
	ErrInvalidSession:      http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrHistoryOperation:    http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
	ErrQuotaExceeded:       http.StatusTooManyRequests,
	ErrModelNotFound:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Status devolve o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
