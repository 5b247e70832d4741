package analyzing

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
)

// Erros específicos para o contexto de análises
var (
	// Erros de validação
	ErrMissingCredential = errors.New("chave de API não informada")
	ErrInvalidData       = errors.New("dados de vendas inválidos")
	ErrMissingQuestion   = errors.New("pergunta não informada")

	// Erros de serviços externos
	ErrGeneration = errors.New("falha ao gerar análise")

	// Erros de persistência
	ErrHistoryWrite = errors.New("falha ao salvar análise no histórico")
	ErrHistoryClear = errors.New("falha ao limpar histórico")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Cause   error  // Erro de origem (validação, serviço externo, banco)
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newCausedError(err error, code string, cause error) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: cause.Error(),
		Cause:   cause,
	}
}

var generationCodes = map[domain.GenerationErrorKind]string{
	domain.GenerationAuth:          apiErrors.ErrInvalidCredential,
	domain.GenerationQuota:         apiErrors.ErrQuotaExceeded,
	domain.GenerationModelNotFound: apiErrors.ErrModelNotFound,
	domain.GenerationNetwork:       apiErrors.ErrCommunication,
	domain.GenerationService:       apiErrors.ErrExternalService,
}

// generationError traduz a falha do serviço de geração para o código da API
func generationError(err error) *AnalysisError {
	code := apiErrors.ErrExternalService

	var genErr *domain.GenerationError
	if errors.As(err, &genErr) {
		if mapped, ok := generationCodes[genErr.Kind]; ok {
			code = mapped
		}
	}

	return newCausedError(ErrGeneration, code, err)
}
