package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestShowPageFirstVisit(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory())

	rec := h.json(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Total Vendas")
	assert.Contains(t, body, "<h2>720</h2>")
	assert.Contains(t, body, "<h2>120.0</h2>")
	assert.Contains(t, body, "vendas-por-categoria")
	assert.Contains(t, body, "Nenhuma análise anterior encontrada")
	assert.Contains(t, body, `value="show_question"`)
	assert.NotContains(t, body, `id="question"`)
	assert.NotEmpty(t, h.cookies, "cookie de sessão deveria ser emitido")
}

func TestShowPageRecentHistory(t *testing.T) {
	h := newHarness(t)

	entries := make([]domain.AnalysisEntry, 0, 5)
	for i := 7; i > 2; i-- {
		entries = append(entries, domain.AnalysisEntry{
			Timestamp:  "2024-03-10T14:05:00Z",
			ResultText: fmt.Sprintf("resultado %d", i),
			SourceData: domain.DefaultSalesData,
		})
	}
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(domain.HistoryResponse{Total: 7, Entries: entries})

	rec := h.json(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Análise #7 - 10/03/2024 às 14:05")
	assert.Contains(t, body, "Análise #3 - ")
	assert.NotContains(t, body, "Análise #2 - ")
	assert.Contains(t, body, "Mostrando as 5 análises mais recentes de 7 total.")
}

func TestSubmitPageInvalidData(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory())

	rec := h.form(url.Values{"action": {ActionValidate}, "data": {"{not valid"}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "JSON inválido")
	assert.NotContains(t, body, "Total Vendas")
}

func TestSubmitPageAnalyzeWithoutCredential(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		Return(nil, analyzing.NewAnalysisError(analyzing.ErrMissingCredential, apiErrors.ErrMissingCredential, ""))
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory())

	rec := h.form(url.Values{"action": {ActionAnalyze}, "data": {domain.DefaultSalesData}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "configure sua API Key na barra lateral")
}

func TestSubmitPageCredentialThenAnalyze(t *testing.T) {
	h := newHarness(t)

	h.analyzer.EXPECT().CheckCredential(gomock.Any(), "chave").Return(nil)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory()).Times(2)

	rec := h.form(url.Values{"action": {ActionSetCredential}, "credential": {" chave "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "API Key configurada!")

	h.analyzer.EXPECT().
		Analyze(gomock.Any(), domain.AnalysisRequest{Credential: "chave", Data: `[{"produto":"A","vendas":10}]`}).
		Return(&domain.AnalysisEntry{ID: "x", ResultText: "Resumo executivo"}, nil)

	rec = h.form(url.Values{"action": {ActionAnalyze}, "data": {`[{"produto":"A","vendas":10}]`}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Análise Gerada pela IA")
	assert.Contains(t, body, "Resumo executivo")
	assert.Contains(t, body, "Análise salva no histórico!")
}

func TestSubmitPageQuestionFlow(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory()).AnyTimes()

	rec := h.form(url.Values{"action": {ActionShowQuestion}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="question"`)

	h.analyzer.EXPECT().AnalyzeQuestion(gomock.Any(), gomock.Any()).
		Return(nil, analyzing.NewAnalysisError(analyzing.ErrMissingQuestion, apiErrors.ErrMissingRequiredData, ""))

	rec = h.form(url.Values{"action": {ActionAnalyzeQuestion}, "data": {domain.DefaultSalesData}, "question": {"  "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Por favor, digite uma pergunta.")
	assert.Contains(t, rec.Body.String(), `id="question"`)

	h.analyzer.EXPECT().
		AnalyzeQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, request domain.AnalysisRequest) (*domain.AnalysisEntry, error) {
			assert.Equal(t, "Qual produto lidera?", request.Question)
			return &domain.AnalysisEntry{UserQuestion: request.Question, ResultText: "Camiseta"}, nil
		})

	rec = h.form(url.Values{"action": {ActionAnalyzeQuestion}, "data": {domain.DefaultSalesData}, "question": {"Qual produto lidera?"}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Qual produto lidera?")
	assert.NotContains(t, body, `id="question"`)
}

func TestSubmitPageClearHistory(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().ClearHistory(gomock.Any()).Return(nil)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory())

	rec := h.form(url.Values{"action": {ActionClearHistory}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Histórico limpo!")
}

func TestSubmitPageEndSession(t *testing.T) {
	h := newHarness(t)

	rec := h.form(url.Values{"action": {ActionEndSession}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 0, h.sessions.Count())
}

func TestSubmitPageUnknownAction(t *testing.T) {
	h := newHarness(t)

	rec := h.form(url.Values{"action": {"explodir"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// expiringStore simula a limpeza de sessões rodando no meio da requisição:
// depois de alive consultas, Get passa a não encontrar mais a sessão.
type expiringStore struct {
	*sessioning.Service
	alive int
	calls int
}

func (s *expiringStore) Get(id string) (*domain.Session, bool) {
	s.calls++
	if s.calls > s.alive {
		return nil, false
	}
	return s.Service.Get(id)
}

func TestSubmitPageAnalyzeSessionExpiresMidRequest(t *testing.T) {
	sessions := sessioning.NewService(time.Hour)
	h := newHarnessWithStore(t, sessions, &expiringStore{Service: sessions, alive: 1})

	rec := h.form(url.Values{"action": {ActionAnalyze}, "data": {domain.DefaultSalesData}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_003"`)
}

func TestSubmitPageAnalyzeQuestionSessionExpiresAfterAnalysis(t *testing.T) {
	sessions := sessioning.NewService(time.Hour)
	h := newHarnessWithStore(t, sessions, &expiringStore{Service: sessions, alive: 2})
	h.analyzer.EXPECT().AnalyzeQuestion(gomock.Any(), gomock.Any()).
		Return(&domain.AnalysisEntry{ResultText: "ok"}, nil)

	rec := h.form(url.Values{"action": {ActionAnalyzeQuestion}, "data": {domain.DefaultSalesData}, "question": {"Qual?"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_003"`)
}

func TestSubmitPageOverflowShowsValidationError(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(emptyHistory())

	rec := h.form(url.Values{"action": {ActionValidate}, "data": {`[{"vendas":1e308},{"vendas":1e308}]`}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "excede o limite numérico")
	assert.NotContains(t, body, "Total Vendas")
	assert.Contains(t, body, "</html>")
}

func TestShowPageRendersAnalysisMarkdown(t *testing.T) {
	h := newHarness(t)
	h.analyzer.EXPECT().History(gomock.Any(), 5).Return(domain.HistoryResponse{
		Total: 1,
		Entries: []domain.AnalysisEntry{{
			Timestamp:  "2024-03-10T14:05:00Z",
			ResultText: "## Resumo Executivo\n\n- **Camiseta** lidera\n\n<script>alert(1)</script>",
			SourceData: domain.DefaultSalesData,
		}},
	})

	rec := h.json(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<h2>Resumo Executivo</h2>")
	assert.Contains(t, body, "<li><strong>Camiseta</strong> lidera</li>")
	assert.NotContains(t, body, "## Resumo")
	assert.NotContains(t, body, "alert(1)")
}
