package openai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

const providerName = config.ProviderOpenAI

// OpenAIIntegrator fala com qualquer endpoint compatível com a API da OpenAI
type OpenAIIntegrator struct {
	baseURL string
}

func New(cfg config.LLM) *OpenAIIntegrator {
	return &OpenAIIntegrator{baseURL: cfg.BaseURL}
}

func (o *OpenAIIntegrator) Name() string {
	return providerName
}

func (o *OpenAIIntegrator) client(credential string) *goopenai.Client {
	clientConfig := goopenai.DefaultConfig(credential)
	if o.baseURL != "" {
		clientConfig.BaseURL = o.baseURL
	}

	return goopenai.NewClientWithConfig(clientConfig)
}

func (o *OpenAIIntegrator) Generate(ctx context.Context, credential, prompt string, opts domain.GenerationOptions) (string, error) {
	resp, err := o.client(credential).CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: opts.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   int(opts.MaxOutputTokens),
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

	if len(resp.Choices) == 0 {
		return "", integrator.NewError(providerName, domain.GenerationService, integrator.ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", integrator.NewError(providerName, domain.GenerationService, integrator.ErrEmptyResponse)
	}

	return text, nil
}

// CheckModel confirma que o modelo está disponível para a chave informada
func (o *OpenAIIntegrator) CheckModel(ctx context.Context, credential, model string) error {
	if _, err := o.client(credential).GetModel(ctx, model); err != nil {
		return classify(err)
	}

	return nil
}

func classify(err error) *domain.GenerationError {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return integrator.NewError(providerName, integrator.KindFromStatus(apiErr.HTTPStatusCode, "", apiErr.Message), err)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return integrator.NewError(providerName, integrator.KindFromStatus(reqErr.HTTPStatusCode, "", reqErr.Error()), err)
	}

	if integrator.IsNetworkError(err) {
		return integrator.NewError(providerName, domain.GenerationNetwork, err)
	}

	return integrator.NewError(providerName, domain.GenerationService, err)
}
