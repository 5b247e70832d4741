package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analysis-agent/internal/api/handler/router"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Page retorna as rotas da página HTML
func Page(services PageServices, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     ShowPage(services),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
		{
			Path:        "/",
			Method:      http.MethodPost,
			Handler:     SubmitPage(services),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func Sales(service aggregating.AggregatingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/sample",
			Method:  http.MethodGet,
			Handler: GetSampleData(),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodPost,
			Handler: SummarizeSales(service),
		},
	}
}

func Analysis(analyzer analyzing.Analyzer, sessions sessioning.SessionService, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis",
			Method:      http.MethodPost,
			Handler:     CreateAnalysis(analyzer, sessions),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func History(analyzer analyzing.Analyzer, defaultLimit int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: ListHistory(analyzer, defaultLimit),
		},
		{
			Path:    "/v1/history",
			Method:  http.MethodDelete,
			Handler: ClearHistory(analyzer),
		},
	}
}

// Session retorna as rotas que alteram o estado da sessão do navegador
func Session(services PageServices, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/session/credential",
			Method:      http.MethodPut,
			Handler:     SetCredential(services.Analyzer, services.Sessions),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
		{
			Path:        "/v1/session/question",
			Method:      http.MethodPut,
			Handler:     SetQuestionVisibility(services.Sessions),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
		{
			Path:        "/v1/session",
			Method:      http.MethodDelete,
			Handler:     EndSession(services.Sessions, services.Session),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
