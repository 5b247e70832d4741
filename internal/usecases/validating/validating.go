// Package validating interpreta o texto colado pelo usuário como uma lista de
// registros de vendas.
package validating

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptyInput = errors.New("dados vazios")
	ErrNotArray   = errors.New("a raiz do JSON deve ser uma lista")
)

// Chaves aceitas para cada campo. O vocabulário em português é o do conjunto
// de exemplo original.
var (
	categoryKeys = []string{"category", "produto", "categoria", "product"}
	amountKeys   = []string{"amount", "vendas", "valor", "sales"}
	regionKeys   = []string{"region", "regiao", "região"}
	periodKeys   = []string{"period", "mes", "mês", "periodo", "período", "month"}
)

// ValidationError descreve onde o texto deixou de ser um JSON de vendas válido
type ValidationError struct {
	Index  int // posição do item na lista, -1 quando o erro é de sintaxe
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("JSON inválido: item %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("JSON inválido: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Parse valida o texto e devolve os registros na ordem em que aparecem.
// Campos ausentes são tolerados; o agregador ignora registros sem valor.
func Parse(raw string) ([]domain.SalesRecord, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ValidationError{Index: -1, Reason: ErrEmptyInput.Error(), Err: ErrEmptyInput}
	}

	var root any
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return nil, &ValidationError{Index: -1, Reason: err.Error(), Err: err}
	}

	items, ok := root.([]any)
	if !ok {
		return nil, &ValidationError{
			Index:  -1,
			Reason: fmt.Sprintf("%s, encontrado %s", ErrNotArray.Error(), describe(root)),
			Err:    ErrNotArray,
		}
	}

	records := make([]domain.SalesRecord, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, &ValidationError{
				Index:  i,
				Reason: fmt.Sprintf("esperado um objeto, encontrado %s", describe(item)),
			}
		}

		records = append(records, toRecord(fields))
	}

	return records, nil
}

func toRecord(fields map[string]any) domain.SalesRecord {
	return domain.SalesRecord{
		Category: lookupString(fields, categoryKeys),
		Amount:   lookupAmount(fields, amountKeys),
		Region:   lookupString(fields, regionKeys),
		Period:   lookupString(fields, periodKeys),
	}
}

func lookup(fields map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := fields[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func lookupString(fields map[string]any, keys []string) string {
	v, ok := lookup(fields, keys)
	if !ok {
		return ""
	}

	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func lookupAmount(fields map[string]any, keys []string) *float64 {
	v, ok := lookup(fields, keys)
	if !ok {
		return nil
	}

	var amount float64
	switch value := v.(type) {
	case float64:
		amount = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		amount = parsed
	default:
		return nil
	}

	// "NaN" e "Inf" passam pelo ParseFloat mas não são valores de venda
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil
	}
	return &amount
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "um objeto"
	case []any:
		return "uma lista"
	case string:
		return "um texto"
	case float64:
		return "um número"
	case bool:
		return "um booleano"
	default:
		return fmt.Sprintf("%T", v)
	}
}
