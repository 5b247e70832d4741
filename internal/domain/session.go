package domain

import "time"

// Session guarda o estado de UI de um usuário. A credencial nunca é
// serializada nem persistida.
type Session struct {
	ID                string    `json:"id"`
	Credential        string    `json:"-"`
	ShowQuestionInput bool      `json:"show_question_input"`
	DataText          string    `json:"-"`
	Question          string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	LastSeenAt        time.Time `json:"last_seen_at"`
}

// HasCredential indica se a sessão já tem uma chave de API configurada
func (s *Session) HasCredential() bool {
	return s != nil && s.Credential != ""
}

// SessionCleanupStatus descreve a última execução da limpeza de sessões
type SessionCleanupStatus struct {
	Enabled             bool      `json:"enabled"`
	Running             bool      `json:"running"`
	Interval            string    `json:"interval"`
	TTL                 string    `json:"ttl"`
	ActiveSessions      int       `json:"active_sessions"`
	LastExpired         int       `json:"last_expired"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
}
