package main

import (
	"context"
	"os"

	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator/provider"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/repository"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	app := &app{
		llm:       cfg.LLM,
		generator: provider.New(cfg.LLM),
		openHistory: func(ctx context.Context) (repository.HistoryRepository, func() error, error) {
			return repository.OpenHistory(ctx, cfg)
		},
		getenv: os.Getenv,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
