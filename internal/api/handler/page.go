package handler

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/apiErrors"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/middleware"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

// Ações aceitas pelo formulário da página
const (
	ActionValidate        = "validate"
	ActionAnalyze         = "analyze"
	ActionShowQuestion    = "show_question"
	ActionAnalyzeQuestion = "analyze_question"
	ActionClearHistory    = "clear_history"
	ActionSetCredential   = "set_credential"
	ActionEndSession      = "end_session"
)

const historySampleLength = 200

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"thousands": utils.FormatThousands,
	"oneDecimal": func(f float64) string {
		return fmt.Sprintf("%.1f", f)
	},
	"markdown": renderMarkdown,
}).ParseFS(templatesFS, "templates/page.html"))

// renderMarkdown devolve o HTML já sanitizado. Em caso de erro o texto
// aparece escapado, sem formatação.
func renderMarkdown(text string) template.HTML {
	rendered, err := utils.RenderMarkdown(text)
	if err != nil {
		log.L.WithError(err).Warn("Markdown não renderizado")
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(rendered)
}

// PageServices reúne as dependências da página
type PageServices struct {
	Analyzer   analyzing.Analyzer
	Aggregator aggregating.AggregatingService
	Sessions   sessioning.SessionService
	LLM        config.LLM
	Session    config.Session
	// RecentLimit é a quantidade de análises exibidas no histórico
	RecentLimit int
}

type flash struct {
	Kind string // success, warning, error, info
	Text string
}

type historyItem struct {
	Number     int
	Timestamp  string
	Question   string
	ResultText string
	DataSample string
}

type pageView struct {
	DataText        string
	Question        string
	ShowQuestion    bool
	HasCredential   bool
	Provider        string
	Model           string
	ValidData       bool
	ValidationError string
	Summary         *domain.SalesSummary
	Charts          []domain.ChartSeries
	Analysis        *domain.AnalysisEntry
	Messages        []flash
	History         []historyItem
	HistoryTotal    int
	HistoryLimit    int
}

// ShowPage renderiza a página com o estado da sessão
func ShowPage(services PageServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := services.Sessions.Get(middleware.SessionIDFromContext(r.Context()))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "Sessão inexistente ou expirada", nil)
			return
		}

		renderPage(w, r.Context(), services, session, nil, nil)
	})
}

// SubmitPage trata as ações do formulário e renderiza a página de novo
func SubmitPage(services PageServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middleware.SessionIDFromContext(ctx)
		logger := log.ForContext(ctx)

		if _, ok := services.Sessions.Get(sessionID); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "Sessão inexistente ou expirada", nil)
			return
		}

		if err := r.ParseForm(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido: "+err.Error(), nil)
			return
		}

		action := r.PostFormValue("action")
		logger = logger.WithField("action", action)

		if _, hasData := r.PostForm["data"]; hasData {
			_ = services.Sessions.SetDraft(sessionID, r.PostFormValue("data"), r.PostFormValue("question"))
		}

		var (
			messages []flash
			analysis *domain.AnalysisEntry
		)

		switch action {
		case ActionValidate:
			// só renderiza de novo com o rascunho atualizado

		case ActionAnalyze:
			analysis, messages = runAnalysis(ctx, services, sessionID, false)

		case ActionShowQuestion:
			_ = services.Sessions.SetShowQuestion(sessionID, true)

		case ActionAnalyzeQuestion:
			analysis, messages = runAnalysis(ctx, services, sessionID, true)
			if analysis != nil {
				if session, ok := services.Sessions.Get(sessionID); ok {
					_ = services.Sessions.SetShowQuestion(sessionID, false)
					_ = services.Sessions.SetDraft(sessionID, session.DataText, "")
				}
			}

		case ActionClearHistory:
			if err := services.Analyzer.ClearHistory(ctx); err != nil {
				logger.WithError(err).Error("Erro ao limpar histórico")
				messages = append(messages, flash{Kind: "error", Text: "❌ " + err.Error()})
			} else {
				messages = append(messages, flash{Kind: "success", Text: "Histórico limpo!"})
			}

		case ActionSetCredential:
			messages = setPageCredential(ctx, services, sessionID, r.PostFormValue("credential"))

		case ActionEndSession:
			services.Sessions.End(sessionID)
			middleware.ClearSessionCookie(w, services.Session)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação desconhecida", map[string]any{"action": action})
			return
		}

		session, ok := services.Sessions.Get(sessionID)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "Sessão inexistente ou expirada", nil)
			return
		}

		renderPage(w, ctx, services, session, analysis, messages)
	})
}

func runAnalysis(ctx context.Context, services PageServices, sessionID string, withQuestion bool) (*domain.AnalysisEntry, []flash) {
	session, ok := services.Sessions.Get(sessionID)
	if !ok {
		return nil, []flash{{Kind: "error", Text: "❌ Sessão inexistente ou expirada"}}
	}

	request := domain.AnalysisRequest{
		Credential: session.Credential,
		Data:       session.DataText,
	}

	analyze := services.Analyzer.Analyze
	if withQuestion {
		request.Question = session.Question
		analyze = services.Analyzer.AnalyzeQuestion
	}

	entry, err := analyze(ctx, request)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("analysis: análise não gerada")
		return nil, []flash{analysisFlash(err)}
	}

	return entry, []flash{{Kind: "success", Text: "✅ Análise salva no histórico!"}}
}

func analysisFlash(err error) flash {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		switch analysisErr.Code {
		case apiErrors.ErrMissingCredential:
			return flash{Kind: "warning", Text: "⚠️ Por favor, configure sua API Key na barra lateral."}
		case apiErrors.ErrInvalidFormat:
			return flash{Kind: "warning", Text: "⚠️ Por favor, forneça dados JSON válidos."}
		case apiErrors.ErrMissingRequiredData:
			return flash{Kind: "warning", Text: "Por favor, digite uma pergunta."}
		}
	}

	return flash{Kind: "error", Text: "❌ Erro ao gerar análise: " + err.Error()}
}

func setPageCredential(ctx context.Context, services PageServices, sessionID, credential string) []flash {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		_ = services.Sessions.SetCredential(sessionID, "")
		return []flash{{Kind: "warning", Text: "⚠️ Por favor, configure sua API Key na barra lateral."}}
	}

	if err := services.Analyzer.CheckCredential(ctx, credential); err != nil {
		var analysisErr *analyzing.AnalysisError
		if errors.As(err, &analysisErr) && analysisErr.Code == apiErrors.ErrModelNotFound {
			return []flash{{Kind: "error", Text: fmt.Sprintf("❌ O modelo '%s' não foi encontrado.", services.LLM.Model)}}
		}
		return []flash{{Kind: "error", Text: "❌ Erro ao configurar API: " + err.Error()}}
	}

	if err := services.Sessions.SetCredential(sessionID, credential); err != nil {
		return []flash{{Kind: "error", Text: "❌ " + err.Error()}}
	}

	return []flash{{Kind: "success", Text: "✅ API Key configurada!"}}
}

func renderPage(
	w http.ResponseWriter,
	ctx context.Context,
	services PageServices,
	session *domain.Session,
	analysis *domain.AnalysisEntry,
	messages []flash,
) {
	view := pageView{
		DataText:      session.DataText,
		Question:      session.Question,
		ShowQuestion:  session.ShowQuestionInput,
		HasCredential: session.HasCredential(),
		Provider:      services.LLM.Provider,
		Model:         services.LLM.Model,
		Analysis:      analysis,
		Messages:      messages,
		HistoryLimit:  services.RecentLimit,
	}

	if strings.TrimSpace(session.DataText) != "" {
		response, err := services.Aggregator.Summarize(session.DataText)
		if err != nil {
			view.ValidationError = "❌ " + err.Error()
		} else {
			view.ValidData = true
			view.Summary = &response.Summary
			view.Charts = response.Charts
		}
	}

	history := services.Analyzer.History(ctx, services.RecentLimit)
	view.HistoryTotal = history.Total
	for i, entry := range history.Entries {
		view.History = append(view.History, historyItem{
			Number:     history.Total - i,
			Timestamp:  utils.FormatDisplayTimestamp(entry.Timestamp),
			Question:   entry.UserQuestion,
			ResultText: entry.ResultText,
			DataSample: utils.Truncate(entry.SourceData, historySampleLength),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := pageTemplate.Execute(w, view); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao renderizar página")
	}
}
