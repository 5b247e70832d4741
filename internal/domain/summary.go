package domain

// GroupTotal é o total de vendas de um grupo (categoria, região ou período)
type GroupTotal struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// SalesSummary reúne as métricas exibidas junto aos gráficos
type SalesSummary struct {
	ByCategory         []GroupTotal `json:"by_category"`
	ByRegion           []GroupTotal `json:"by_region"`
	ByPeriod           []GroupTotal `json:"by_period"`
	Total              float64      `json:"total"`
	DistinctCategories int          `json:"distinct_categories"`
	DistinctRegions    int          `json:"distinct_regions"`
	Mean               float64      `json:"mean"`
	RecordCount        int          `json:"record_count"`
	Skipped            int          `json:"skipped"`
}

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
	ChartLine ChartKind = "line"
)

// ChartSeries é a série entregue à biblioteca de gráficos do navegador
type ChartSeries struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Kind   ChartKind `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SummaryResponse é a resposta de /v1/sales/summary
type SummaryResponse struct {
	Summary SalesSummary  `json:"summary"`
	Charts  []ChartSeries `json:"charts"`
}
