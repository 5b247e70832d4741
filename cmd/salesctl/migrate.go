package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/repository"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
)

// newMigrateCmd copia um arquivo de histórico JSON para o backend configurado
// em HISTORY_DRIVER. Entradas com id já presente no destino são ignoradas.
func newMigrateCmd(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Importa um arquivo de histórico JSON para o backend configurado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return errors.New("--from é obrigatório")
			}

			ctx := cmd.Context()
			startTime := time.Now()

			entries := repository.NewFileHistoryRepository(source).Load(ctx)
			log.L.Infof("Iniciando migração de %d análises...", len(entries))

			target, closeTarget, err := a.openHistory(ctx)
			if err != nil {
				return err
			}
			defer closeTarget()

			existing := make(map[string]bool)
			for _, entry := range target.Load(ctx) {
				if entry.ID != "" {
					existing[entry.ID] = true
				}
			}

			inserted, skipped := 0, 0
			for i, entry := range entries {
				if entry.ID != "" && existing[entry.ID] {
					skipped++
					continue
				}

				if err := target.Append(ctx, entry); err != nil {
					return errors.Wrapf(err, "erro ao migrar a análise %d", i+1)
				}
				inserted++
			}

			log.L.Infof("Migração concluída em %v", time.Since(startTime))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d análises migradas, %d já existentes\n", inserted, skipped)
			return err
		},
	}

	cmd.Flags().StringVar(&source, "from", "", "arquivo de histórico JSON de origem")
	return cmd
}
