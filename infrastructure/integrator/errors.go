// Package integrator reúne o que é comum aos clientes dos serviços de geração
package integrator

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
)

// ErrEmptyResponse indica que o serviço respondeu sem texto
var ErrEmptyResponse = errors.New("o serviço não retornou conteúdo")

// KindFromStatus classifica a falha a partir do status HTTP e da mensagem
// devolvida pelo serviço.
func KindFromStatus(status int, statusText, message string) domain.GenerationErrorKind {
	statusText = strings.ToUpper(statusText)
	lower := strings.ToLower(message)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden,
		statusText == "UNAUTHENTICATED" || statusText == "PERMISSION_DENIED",
		strings.Contains(lower, "api key") && (strings.Contains(lower, "not valid") || strings.Contains(lower, "invalid")),
		strings.Contains(lower, "api_key_invalid"):
		return domain.GenerationAuth
	case status == http.StatusTooManyRequests, statusText == "RESOURCE_EXHAUSTED",
		strings.Contains(lower, "quota"):
		return domain.GenerationQuota
	case status == http.StatusNotFound, statusText == "NOT_FOUND":
		return domain.GenerationModelNotFound
	default:
		return domain.GenerationService
	}
}

// IsNetworkError indica falhas de transporte: DNS, conexão recusada, timeout
func IsNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// NewError monta o erro de geração mantendo a mensagem original
func NewError(provider string, kind domain.GenerationErrorKind, err error) *domain.GenerationError {
	return &domain.GenerationError{Kind: kind, Provider: provider, Err: err}
}
