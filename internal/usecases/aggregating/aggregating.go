// Package aggregating calcula totais, médias e séries de gráfico a partir
// dos registros de vendas já validados.
//
// Registros sem valor são ignorados e contados em Skipped. Registros com
// valor mas sem categoria, região ou período entram no grupo
// domain.MissingLabel, de modo que a soma de cada agrupamento é sempre igual
// ao total. A média de um conjunto vazio é 0.
package aggregating

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/internal/usecases/validating"
)

// ErrOverflow indica que a soma dos valores saiu da faixa de float64
var ErrOverflow = errors.New("a soma das vendas excede o limite numérico")

type AggregatingService interface {
	Summarize(raw string) (*domain.SummaryResponse, error)
}

type SummaryService struct{}

func NewSummaryService() AggregatingService {
	return &SummaryService{}
}

// Summarize valida o texto informado e devolve o resumo com as séries de
// gráfico. Em caso de JSON inválido nada é agregado.
func (s *SummaryService) Summarize(raw string) (*domain.SummaryResponse, error) {
	records, err := validating.Parse(raw)
	if err != nil {
		return nil, err
	}

	summary := Summarize(records)
	if !isFinite(summary) {
		return nil, &validating.ValidationError{Index: -1, Reason: ErrOverflow.Error(), Err: ErrOverflow}
	}

	return &domain.SummaryResponse{
		Summary: summary,
		Charts:  Charts(summary),
	}, nil
}

type groupAccumulator struct {
	order  []string
	totals map[string]*domain.GroupTotal
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{totals: make(map[string]*domain.GroupTotal)}
}

func (g *groupAccumulator) add(label string, amount float64) {
	if label == "" {
		label = domain.MissingLabel
	}

	group, exists := g.totals[label]
	if !exists {
		group = &domain.GroupTotal{Label: label}
		g.totals[label] = group
		g.order = append(g.order, label)
	}

	group.Total += amount
	group.Count++
}

func (g *groupAccumulator) list() []domain.GroupTotal {
	out := make([]domain.GroupTotal, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, *g.totals[label])
	}
	return out
}

// distinct não conta o grupo sem rótulo
func (g *groupAccumulator) distinct() int {
	n := len(g.order)
	if _, exists := g.totals[domain.MissingLabel]; exists {
		n--
	}
	return n
}

// Summarize agrega os registros por categoria, região e período
func Summarize(records []domain.SalesRecord) domain.SalesSummary {
	categories := newGroupAccumulator()
	regions := newGroupAccumulator()
	periods := newGroupAccumulator()

	summary := domain.SalesSummary{RecordCount: len(records)}
	counted := 0

	for _, record := range records {
		if !record.HasAmount() {
			summary.Skipped++
			continue
		}

		amount := *record.Amount
		summary.Total += amount
		counted++

		categories.add(record.Category, amount)
		regions.add(record.Region, amount)
		periods.add(record.Period, amount)
	}

	if counted > 0 {
		summary.Mean = summary.Total / float64(counted)
	}

	summary.ByCategory = categories.list()
	summary.ByRegion = regions.list()
	summary.ByPeriod = periods.list()
	summary.DistinctCategories = categories.distinct()
	summary.DistinctRegions = regions.distinct()

	return summary
}

// isFinite confere total, média e totais de grupo. Grupos podem estourar
// mesmo com o total finito quando há valores negativos.
func isFinite(summary domain.SalesSummary) bool {
	values := []float64{summary.Total, summary.Mean}
	for _, groups := range [][]domain.GroupTotal{summary.ByCategory, summary.ByRegion, summary.ByPeriod} {
		for _, group := range groups {
			values = append(values, group.Total)
		}
	}

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Charts monta as três séries exibidas na página: barras por categoria,
// pizza por região e linha por período.
func Charts(summary domain.SalesSummary) []domain.ChartSeries {
	return []domain.ChartSeries{
		toSeries("vendas-por-categoria", "Vendas por Categoria", domain.ChartBar, summary.ByCategory),
		toSeries("vendas-por-regiao", "Distribuição por Região", domain.ChartPie, summary.ByRegion),
		toSeries("vendas-por-periodo", "Evolução por Período", domain.ChartLine, summary.ByPeriod),
	}
}

func toSeries(id, title string, kind domain.ChartKind, groups []domain.GroupTotal) domain.ChartSeries {
	series := domain.ChartSeries{
		ID:     id,
		Title:  title,
		Kind:   kind,
		Labels: make([]string, 0, len(groups)),
		Values: make([]float64, 0, len(groups)),
	}

	for _, g := range groups {
		series.Labels = append(series.Labels, g.Label)
		series.Values = append(series.Values, g.Total)
	}

	return series
}
