package main

import (
	"context"

	"github.com/vfg2006/sales-analysis-agent/infrastructure/integrator/provider"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/repository"
	"github.com/vfg2006/sales-analysis-agent/internal/api"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/scheduler"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/sessioning"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel) {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	history, closeHistory, err := repository.OpenHistory(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir o histórico de análises")
	}
	defer func() {
		if err := closeHistory(); err != nil {
			log.L.WithError(err).Warn("Erro ao fechar o histórico")
		}
	}()
	log.L.WithField("history_driver", cfg.History.Driver).Info("Histórico de análises pronto")

	generator := provider.New(cfg.LLM)
	log.L.WithFields(log.Fields{
		"provider": generator.Name(),
		"model":    cfg.LLM.Model,
	}).Info("Serviço de geração configurado")

	analyzer := analyzing.NewService(cfg.LLM, history, generator)
	aggregator := aggregating.NewSummaryService()
	sessions := sessioning.NewService(cfg.Session.TTL)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessions, cfg.Session)
	if err := sessionCleanupService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		log.L.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, aggregator, sessions, sessionCleanupService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
