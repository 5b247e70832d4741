package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

// SessionExpirer é o que a limpeza precisa do armazenamento de sessões
type SessionExpirer interface {
	Expire(now time.Time) int
	Count() int
}

// SessionCleanupService remove periodicamente as sessões inativas,
// apagando junto a chave de API guardada em memória.
type SessionCleanupService struct {
	scheduler           *gocron.Scheduler
	sessions            SessionExpirer
	interval            time.Duration
	ttl                 time.Duration
	enabled             bool
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastExpired         int
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(sessions SessionExpirer, cfg config.Session) *SessionCleanupService {
	log.L.WithFields(log.Fields{
		"session_cleanup_interval": cfg.CleanupInterval.String(),
		"session_ttl":              cfg.TTL.String(),
		"session_cleanup_enabled":  cfg.CleanupEnabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		sessions:  sessions,
		interval:  cfg.CleanupInterval,
		ttl:       cfg.TTL,
		enabled:   cfg.CleanupEnabled,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	if s.interval <= 0 {
		return fmt.Errorf("intervalo de limpeza de sessões inválido: %s", s.interval)
	}

	log.L.WithField("session_cleanup_interval", s.interval.String()).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		s.cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanup() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	expired := s.sessions.Expire(s.now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastExpired = expired
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	if expired > 0 {
		log.L.WithField("session_expired", expired).Info("Sessões inativas removidas")
	} else {
		log.L.Debug("Nenhuma sessão inativa para remover")
	}
}

// TriggerManualSync executa a limpeza fora do agendamento
func (s *SessionCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando limpeza manual de sessões")
	go s.cleanup()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() domain.SessionCleanupStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return domain.SessionCleanupStatus{
		Enabled:             s.enabled,
		Running:             s.syncRunning,
		Interval:            s.interval.String(),
		TTL:                 s.ttl.String(),
		ActiveSessions:      s.sessions.Count(),
		LastExpired:         s.lastExpired,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
	}
}
