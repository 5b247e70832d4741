package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/repository"
	"github.com/vfg2006/sales-analysis-agent/internal/config"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

// variáveis consultadas, em ordem, para achar a chave de API
var credentialEnvVars = []string{"GEMINI_API_KEY", "LLM_API_KEY"}

type app struct {
	llm         config.LLM
	generator   analyzing.Generator
	openHistory func(ctx context.Context) (repository.HistoryRepository, func() error, error)
	getenv      func(string) string
}

// withAnalyzer abre o histórico, entrega o serviço de análises e fecha o histórico no fim
func (a *app) withAnalyzer(ctx context.Context, fn func(analyzing.Analyzer) error) error {
	history, closeHistory, err := a.openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeHistory()

	return fn(analyzing.NewService(a.llm, history, a.generator))
}

func (a *app) credential() string {
	for _, name := range credentialEnvVars {
		if value := strings.TrimSpace(a.getenv(name)); value != "" {
			return value
		}
	}
	return ""
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "salesctl",
		Short:        "Ferramenta de linha de comando do agente de análise de vendas",
		SilenceUsage: true,
	}

	root.AddCommand(newSummaryCmd(), newHistoryCmd(a), newAnalyzeCmd(a))
	return root
}

func readData(file string) (string, error) {
	if file == "" {
		return domain.DefaultSalesData, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao ler %s", file)
	}
	return string(content), nil
}

func printJSON(cmd *cobra.Command, payload any) error {
	out, err := utils.PrettyJSON(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newSummaryCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Valida o JSON de vendas e mostra as métricas agregadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(file)
			if err != nil {
				return err
			}

			summary, err := aggregating.NewSummaryService().Summarize(data)
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "arquivo JSON de vendas (padrão: dados de exemplo)")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Consulta ou limpa o histórico de análises",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista as análises, da mais recente para a mais antiga",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("--limit não pode ser negativo")
			}
			return a.withAnalyzer(cmd.Context(), func(analyzer analyzing.Analyzer) error {
				return printJSON(cmd, analyzer.History(cmd.Context(), limit))
			})
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 0, "quantidade máxima de análises (0 = todas)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Apaga todo o histórico",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withAnalyzer(cmd.Context(), func(analyzer analyzing.Analyzer) error {
				if err := analyzer.ClearHistory(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Histórico limpo!")
				return err
			})
		},
	}

	cmd.AddCommand(list, clearCmd, newMigrateCmd(a))
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		file     string
		question string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Gera uma análise dos dados e grava no histórico",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(file)
			if err != nil {
				return err
			}

			request := domain.AnalysisRequest{
				Credential: a.credential(),
				Data:       data,
				Question:   question,
			}

			return a.withAnalyzer(cmd.Context(), func(analyzer analyzing.Analyzer) error {
				var entry *domain.AnalysisEntry
				if cmd.Flags().Changed("question") {
					entry, err = analyzer.AnalyzeQuestion(cmd.Context(), request)
				} else {
					entry, err = analyzer.Analyze(cmd.Context(), request)
				}
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), entry.ResultText)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "arquivo JSON de vendas (padrão: dados de exemplo)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "pergunta específica sobre os dados")
	return cmd
}
