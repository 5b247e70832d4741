package openai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

var options = domain.GenerationOptions{Model: "gemini-1.5-flash", Temperature: 0.1, MaxOutputTokens: 8192}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOpenAIIntegrator_Generate(t *testing.T) {
	var path, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Resumo Executivo"},"finish_reason":"stop"}]}`)
	}))
	t.Cleanup(srv.Close)

	o := New(config.LLM{BaseURL: srv.URL + "/v1"})
	text, err := o.Generate(context.Background(), "chave", "prompt", options)

	require.NoError(t, err)
	assert.Equal(t, "Resumo Executivo", text)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer chave", auth)
}

func TestOpenAIIntegrator_GenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected domain.GenerationErrorKind
	}{
		{
			name:     "chave inválida",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
			expected: domain.GenerationAuth,
		},
		{
			name:     "cota esgotada",
			status:   http.StatusTooManyRequests,
			body:     `{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`,
			expected: domain.GenerationQuota,
		},
		{
			name:     "modelo inexistente",
			status:   http.StatusNotFound,
			body:     `{"error":{"message":"The model does not exist","type":"invalid_request_error","code":"model_not_found"}}`,
			expected: domain.GenerationModelNotFound,
		},
		{
			name:     "erro do serviço",
			status:   http.StatusInternalServerError,
			body:     `{"error":{"message":"boom","type":"server_error"}}`,
			expected: domain.GenerationService,
		},
		{
			name:     "sem escolhas",
			status:   http.StatusOK,
			body:     `{"id":"1","choices":[]}`,
			expected: domain.GenerationService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)

			o := New(config.LLM{BaseURL: srv.URL})
			_, err := o.Generate(context.Background(), "chave", "prompt", options)

			var genErr *domain.GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.expected, genErr.Kind)
			assert.Equal(t, config.ProviderOpenAI, genErr.Provider)
		})
	}
}

func TestOpenAIIntegrator_NetworkError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	o := New(config.LLM{BaseURL: url})
	_, err := o.Generate(context.Background(), "chave", "prompt", options)

	var genErr *domain.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, domain.GenerationNetwork, genErr.Kind)
}

func TestOpenAIIntegrator_CheckModel(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"gemini-1.5-flash","object":"model","owned_by":"google"}`)
	}))
	t.Cleanup(srv.Close)

	o := New(config.LLM{BaseURL: srv.URL})
	require.NoError(t, o.CheckModel(context.Background(), "chave", "gemini-1.5-flash"))
	assert.Equal(t, "/models/gemini-1.5-flash", path)
}
