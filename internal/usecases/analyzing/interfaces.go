package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analysis-agent/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Generator define o cliente do serviço externo de geração de texto
type Generator interface {
	// Name identifica o provedor nos logs e no histórico
	Name() string

	// Generate envia o prompt usando a chave do usuário e devolve o texto gerado
	Generate(ctx context.Context, credential, prompt string, opts domain.GenerationOptions) (string, error)

	// CheckModel confirma que o modelo está disponível para a chave
	CheckModel(ctx context.Context, credential, model string) error
}

// Analyzer é a interface usada pelos handlers e pela linha de comando
type Analyzer interface {
	// Analyze valida os dados, gera a análise e a registra no histórico
	Analyze(ctx context.Context, request domain.AnalysisRequest) (*domain.AnalysisEntry, error)

	// AnalyzeQuestion exige pergunta preenchida antes de analisar
	AnalyzeQuestion(ctx context.Context, request domain.AnalysisRequest) (*domain.AnalysisEntry, error)

	// CheckCredential valida a chave consultando o modelo configurado
	CheckCredential(ctx context.Context, credential string) error

	// History devolve as entradas mais recentes primeiro, limitadas a limit (0 = todas)
	History(ctx context.Context, limit int) domain.HistoryResponse

	ClearHistory(ctx context.Context) error
}
