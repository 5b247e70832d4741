package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/middleware"
)

type credentialRequest struct {
	Credential string `json:"credential"`
}

type questionVisibilityRequest struct {
	Show bool `json:"show"`
}

type sessionResponse struct {
	HasCredential     bool `json:"has_credential"`
	ShowQuestionInput bool `json:"show_question_input"`
}

func currentSession(w http.ResponseWriter, r *http.Request, sessions sessioning.SessionService) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if _, ok := sessions.Get(sessionID); sessionID == "" || !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "Sessão inexistente ou expirada", nil)
		return "", false
	}
	return sessionID, true
}

// SetCredential confere a chave no serviço de geração antes de guardá-la na sessão
func SetCredential(analyzer analyzing.Analyzer, sessions sessioning.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := currentSession(w, r, sessions)
		if !ok {
			return
		}

		var request credentialRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := analyzer.CheckCredential(r.Context(), request.Credential); err != nil {
			writeUsecaseError(w, err)
			return
		}

		if err := sessions.SetCredential(sessionID, request.Credential); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).Info("API Key configurada na sessão")
		writeJSON(w, http.StatusOK, sessionResponse{HasCredential: true})
	})
}

// SetQuestionVisibility mostra ou esconde o campo de pergunta
func SetQuestionVisibility(sessions sessioning.SessionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := currentSession(w, r, sessions)
		if !ok {
			return
		}

		var request questionVisibilityRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := sessions.SetShowQuestion(sessionID, request.Show); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, err.Error(), nil)
			return
		}

		session, _ := sessions.Get(sessionID)
		writeJSON(w, http.StatusOK, sessionResponse{
			HasCredential:     session.HasCredential(),
			ShowQuestionInput: request.Show,
		})
	})
}

// EndSession apaga a chave guardada e remove o cookie
func EndSession(sessions sessioning.SessionService, cfg config.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID := middleware.SessionIDFromContext(r.Context()); sessionID != "" {
			sessions.End(sessionID)
		}

		middleware.ClearSessionCookie(w, cfg)
		w.WriteHeader(http.StatusNoContent)
	})
}
