package gemini

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"google.golang.org/genai"
)

const providerName = config.ProviderGemini

// GeminiIntegrator cria um cliente por chamada, usando a chave do usuário
type GeminiIntegrator struct {
	baseURL string
}

func New(cfg config.LLM) *GeminiIntegrator {
	return &GeminiIntegrator{baseURL: cfg.BaseURL}
}

func (g *GeminiIntegrator) Name() string {
	return providerName
}

func (g *GeminiIntegrator) client(ctx context.Context, credential string) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, integrator.NewError(providerName, domain.GenerationAuth, errors.Wrap(err, "erro ao criar cliente"))
	}

	return client, nil
}

func (g *GeminiIntegrator) Generate(ctx context.Context, credential, prompt string, opts domain.GenerationOptions) (string, error) {
	client, err := g.client(ctx, credential)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, opts.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxOutputTokens,
	})
	if err != nil {
		classified := classify(err)
		log.ForContext(ctx).WithFields(log.Fields{
			"provider": providerName,
			"model":    opts.Model,
			"error":    classified.Error(),
		}).Error("analysis: falha ao gerar conteúdo")
		return "", classified
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", integrator.NewError(providerName, domain.GenerationService, integrator.ErrEmptyResponse)
	}

	return text, nil
}

// CheckModel confirma que o modelo está disponível para a chave informada
func (g *GeminiIntegrator) CheckModel(ctx context.Context, credential, model string) error {
	client, err := g.client(ctx, credential)
	if err != nil {
		return err
	}

	if _, err := client.Models.Get(ctx, model, nil); err != nil {
		return classify(err)
	}

	return nil
}

func classify(err error) *domain.GenerationError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return integrator.NewError(providerName, integrator.KindFromStatus(apiErr.Code, apiErr.Status, apiErr.Message), err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return integrator.NewError(providerName, integrator.KindFromStatus(apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message), err)
	}

	if integrator.IsNetworkError(err) {
		return integrator.NewError(providerName, domain.GenerationNetwork, err)
	}

	return integrator.NewError(providerName, integrator.KindFromStatus(0, "", err.Error()), err)
}
