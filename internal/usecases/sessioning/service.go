// Package sessioning guarda em memória o estado de cada visitante da página:
// a chave de API, o rascunho dos dados e a visibilidade do campo de pergunta.
package sessioning

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

var ErrSessionNotFound = errors.New("sessão não encontrada")

type SessionService interface {
	Create() (*domain.Session, error)
	Get(id string) (*domain.Session, bool)
	SetCredential(id, credential string) error
	SetShowQuestion(id string, show bool) error
	SetDraft(id, data, question string) error
	End(id string)
	Expire(now time.Time) int
	Count() int
	TTL() time.Duration
}

type Service struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewService(ttl time.Duration) *Service {
	return &Service{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Create abre uma sessão nova com o conjunto de exemplo no rascunho
func (s *Service) Create() (*domain.Session, error) {
	id, err := utils.GenerateID(utils.SessionIDLength)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da sessão")
	}

	now := s.now()
	session := &domain.Session{
		ID:         id,
		DataText:   domain.DefaultSalesData,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	copied := *session
	return &copied, nil
}

// Get devolve uma cópia da sessão e renova o último acesso
func (s *Service) Get(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	session.LastSeenAt = s.now()
	copied := *session
	return &copied, true
}

func (s *Service) update(id string, fn func(*domain.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	fn(session)
	session.LastSeenAt = s.now()
	return nil
}

func (s *Service) SetCredential(id, credential string) error {
	return s.update(id, func(session *domain.Session) {
		session.Credential = credential
	})
}

func (s *Service) SetShowQuestion(id string, show bool) error {
	return s.update(id, func(session *domain.Session) {
		session.ShowQuestionInput = show
	})
}

func (s *Service) SetDraft(id, data, question string) error {
	return s.update(id, func(session *domain.Session) {
		session.DataText = data
		session.Question = question
	})
}

// End apaga a credencial e descarta a sessão
func (s *Service) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Credential = ""
		delete(s.sessions, id)
	}
}

// Expire remove as sessões sem acesso há mais que o TTL e devolve quantas saíram
func (s *Service) Expire(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, session := range s.sessions {
		if now.Sub(session.LastSeenAt) > s.ttl {
			session.Credential = ""
			delete(s.sessions, id)
			expired++
		}
	}

	return expired
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
