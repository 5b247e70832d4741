package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"

	SessionCookieName = "sales_session"
)

var ErrInvalidSessionToken = errors.New("token de sessão inválido")

// SessionStore é o que o middleware precisa do armazenamento de sessões
type SessionStore interface {
	Create() (*domain.Session, error)
	Get(id string) (*domain.Session, bool)
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueSessionToken assina o id da sessão para o cookie
func IssueSessionToken(secret, sessionID string) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken valida a assinatura e devolve o id da sessão
func ParseSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", errors.Wrap(ErrInvalidSessionToken, err.Error())
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionToken
	}

	return claims.SessionID, nil
}

// SessionMiddleware garante que toda requisição tenha uma sessão. Cookie
// ausente, adulterado ou de sessão expirada gera uma sessão nova.
func SessionMiddleware(store SessionStore, cfg config.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionID, ok := existingSession(r, store, cfg.SecretKey); ok {
				ctx := context.WithValue(r.Context(), ContextKeySession, sessionID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			session, err := store.Create()
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro ao criar sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
				return
			}

			token, err := IssueSessionToken(cfg.SecretKey, session.ID)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro ao assinar token de sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), ContextKeySession, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func existingSession(r *http.Request, store SessionStore, secret string) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	sessionID, err := ParseSessionToken(secret, cookie.Value)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Cookie de sessão recusado")
		return "", false
	}

	if _, ok := store.Get(sessionID); !ok {
		return "", false
	}

	return sessionID, true
}

// SessionIDFromContext devolve o id da sessão colocado pelo SessionMiddleware
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(ContextKeySession).(string)
	return sessionID
}

// ClearSessionCookie remove o cookie no navegador ao encerrar a sessão
func ClearSessionCookie(w http.ResponseWriter, cfg config.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
