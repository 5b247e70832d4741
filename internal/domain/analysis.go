package domain

import "fmt"

// AnalysisEntry é o registro persistido de uma análise concluída.
// Uma vez criado não é alterado.
type AnalysisEntry struct {
	ID           string `json:"id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Prompt       string `json:"prompt"`
	UserQuestion string `json:"user_question,omitempty"`
	SourceData   string `json:"source_data"`
	ResultText   string `json:"result_text"`
	Provider     string `json:"provider,omitempty"`
	Model        string `json:"model,omitempty"`
}

// AnalysisRequest é a entrada do solicitante de análises
type AnalysisRequest struct {
	Credential string `json:"-"`
	Data       string `json:"data"`
	Question   string `json:"question"`
}

// GenerationOptions são os parâmetros enviados ao serviço de geração
type GenerationOptions struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// HistoryResponse é a resposta de /v1/history
type HistoryResponse struct {
	Total   int             `json:"total"`
	Entries []AnalysisEntry `json:"entries"`
}

type GenerationErrorKind string

const (
	GenerationAuth          GenerationErrorKind = "auth"
	GenerationQuota         GenerationErrorKind = "quota"
	GenerationModelNotFound GenerationErrorKind = "model_not_found"
	GenerationNetwork       GenerationErrorKind = "network"
	GenerationService       GenerationErrorKind = "service"
)

// GenerationError é uma falha do serviço externo de geração de texto
type GenerationError struct {
	Kind     GenerationErrorKind
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
