package domain

// MissingLabel agrupa registros que têm valor mas não informam a dimensão
const MissingLabel = "(não informado)"

// SalesRecord representa uma linha de dados de vendas informada pelo usuário
type SalesRecord struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Region   string   `json:"region"`
	Period   string   `json:"period"`
}

// HasAmount indica se o registro pode participar da agregação
func (r SalesRecord) HasAmount() bool {
	return r.Amount != nil
}

// DefaultSalesData é o conjunto de exemplo exibido na primeira visita
const DefaultSalesData = `[
  {"produto": "Camiseta", "vendas": 150, "regiao": "Sudeste", "mes": "Jan"},
  {"produto": "Calça", "vendas": 80, "regiao": "Nordeste", "mes": "Jan"},
  {"produto": "Tênis", "vendas": 200, "regiao": "Sudeste", "mes": "Fev"},
  {"produto": "Camiseta", "vendas": 100, "regiao": "Sul", "mes": "Fev"},
  {"produto": "Bermuda", "vendas": 70, "regiao": "Norte", "mes": "Jan"},
  {"produto": "Boné", "vendas": 120, "regiao": "Sudeste", "mes": "Fev"}
]`
