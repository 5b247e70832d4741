package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
)

func TestGetSampleData(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodGet, "/v1/sales/sample", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body salesDataRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.DefaultSalesData, body.Data)
}

func TestSummarizeSales(t *testing.T) {
	h := newHarness(t)

	payload, err := json.Marshal(salesDataRequest{Data: domain.DefaultSalesData})
	require.NoError(t, err)

	rec := h.json(http.MethodPost, "/v1/sales/summary", string(payload))
	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 720.0, body.Summary.Total)
	assert.Equal(t, 5, body.Summary.DistinctCategories)
	assert.Equal(t, 4, body.Summary.DistinctRegions)
	assert.Len(t, body.Charts, 3)
}

func TestSummarizeSalesInvalidData(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodPost, "/v1/sales/summary", `{"data":"{not valid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VAL_003"`)
}

func TestSummarizeSalesElementIndex(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodPost, "/v1/sales/summary", `{"data":"[{\"produto\":\"A\",\"vendas\":1}, 3]"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"index":1`)
}

func TestSummarizeSalesMalformedBody(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodPost, "/v1/sales/summary", `nada`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VAL_001"`)
}

func TestSummarizeSalesNonFiniteAmounts(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodPost, "/v1/sales/summary", `{"data":"[{\"produto\":\"A\",\"vendas\":\"NaN\"},{\"produto\":\"B\",\"vendas\":\"Infinity\"},{\"produto\":\"C\",\"vendas\":3}]"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Body.String())

	var body domain.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3.0, body.Summary.Total)
	assert.Equal(t, 2, body.Summary.Skipped)
}

func TestSummarizeSalesOverflow(t *testing.T) {
	h := newHarness(t)

	rec := h.json(http.MethodPost, "/v1/sales/summary", `{"data":"[{\"vendas\":1e308},{\"vendas\":1e308}]"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VAL_003"`)
}
