package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analysis-agent/internal/api/handler/router"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

var sessionConfig = config.Session{
	TTL:       time.Hour,
	SecretKey: "segredo-de-teste",
}

type fakeCleaner struct {
	triggered int
}

func (f *fakeCleaner) TriggerManualSync() { f.triggered++ }

func (f *fakeCleaner) GetStatus() domain.SessionCleanupStatus {
	return domain.SessionCleanupStatus{}
}

type harness struct {
	handler  http.Handler
	analyzer *mocks.MockAnalyzer
	sessions *sessioning.Service
	cleaner  *fakeCleaner
	cookies  []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	sessions := sessioning.NewService(time.Hour)
	return newHarnessWithStore(t, sessions, sessions)
}

// newHarnessWithStore permite trocar o armazenamento visto pelos handlers
func newHarnessWithStore(t *testing.T, sessions *sessioning.Service, store sessioning.SessionService) *harness {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	cleaner := &fakeCleaner{}

	services := PageServices{
		Analyzer:    analyzer,
		Aggregator:  aggregating.NewSummaryService(),
		Sessions:    store,
		LLM:         config.LLM{Provider: config.ProviderGemini, Model: "gemini-1.5-flash"},
		Session:     sessionConfig,
		RecentLimit: 5,
	}
	sessionMiddleware := middleware.SessionMiddleware(store, sessionConfig)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Page(services, sessionMiddleware)...),
		router.WithRoutes(Sales(services.Aggregator)...),
		router.WithRoutes(Analysis(analyzer, store, sessionMiddleware)...),
		router.WithRoutes(History(analyzer, 5)...),
		router.WithRoutes(Session(services, sessionMiddleware)...),
		router.WithRoutes(CronJobs(CronJobServices{SessionCleanupService: cleaner})...),
	)

	return &harness{handler: rt, analyzer: analyzer, sessions: sessions, cleaner: cleaner}
}

// do envia a requisição reaproveitando o cookie de sessão recebido antes
func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range h.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.MaxAge >= 0 {
			h.cookies = []*http.Cookie{c}
		}
	}
	return rec
}

func (h *harness) json(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return h.do(req)
}

func (h *harness) form(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.do(req)
}

func emptyHistory() domain.HistoryResponse {
	return domain.HistoryResponse{Entries: []domain.AnalysisEntry{}}
}

func TestHealthcheck(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := time.Parse(time.RFC3339, rec.Body.String())
	require.NoError(t, err)
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
