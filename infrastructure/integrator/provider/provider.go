package provider

import (
	"context"

	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator/gemini"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator/openai"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
)

// Generator é o contrato comum dos integradores de geração de texto
type Generator interface {
	Name() string
	Generate(ctx context.Context, credential, prompt string, opts domain.GenerationOptions) (string, error)
	CheckModel(ctx context.Context, credential, model string) error
}

// New devolve o integrador configurado em LLM_PROVIDER (gemini por padrão)
func New(cfg config.LLM) Generator {
	if cfg.Provider == config.ProviderOpenAI {
		return openai.New(cfg)
	}
	return gemini.New(cfg)
}
