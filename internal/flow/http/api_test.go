package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/platform/httpx"
)

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAPISubmitAndSnapshot(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(jsonRequest(http.MethodPost, "/api/v1/transactions", `{"activity":"RETAIL_SALES","amount":1000}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	state := decodeState(t, rr)
	require.Len(t, state.Snapshot.Transactions, 1)
	assert.Equal(t, flow.FromFloat(1000), state.Snapshot.CashBalance.CheckingAccounts)
	assert.Equal(t, flow.FromFloat(1000), state.Snapshot.Revenue.OperatingRevenue.ProductSales.DirectSales)
	assert.False(t, state.CanUndo)

	rr = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, state.Snapshot, decodeState(t, rr).Snapshot)
}

func TestAPISubmitValidation(t *testing.T) {
	env := newTestEnv(t)
	cases := map[string]struct {
		body   string
		status int
		field  string
	}{
		"zero amount":      {`{"activity":"RETAIL_SALES","amount":0}`, http.StatusUnprocessableEntity, "amount"},
		"negative amount":  {`{"activity":"RETAIL_SALES","amount":-5}`, http.StatusUnprocessableEntity, "amount"},
		"amount too large": {`{"activity":"RETAIL_SALES","amount":1e15}`, http.StatusUnprocessableEntity, "amount"},
		"missing activity": {`{"amount":5}`, http.StatusUnprocessableEntity, "activity"},
		"unknown activity": {`{"activity":"TAX_REFUND","amount":5}`, http.StatusUnprocessableEntity, "activity"},
		"unknown field":    {`{"activity":"RETAIL_SALES","amount":5,"memo":"x"}`, http.StatusUnprocessableEntity, ""},
		"empty body":       {``, http.StatusUnprocessableEntity, ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := env.do(jsonRequest(http.MethodPost, "/api/v1/transactions", tc.body))
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
			if tc.field != "" {
				var problem httpx.ProblemDetail
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
				assert.Contains(t, problem.Errors, tc.field)
			}
		})
	}
	snap, _ := env.service.Current()
	assert.Empty(t, snap.Transactions)
}

func TestAPISubmitIdempotencyKey(t *testing.T) {
	env := newTestEnv(t)
	send := func() *httptest.ResponseRecorder {
		req := jsonRequest(http.MethodPost, "/api/v1/transactions", `{"activity":"WAGES_EXPENSE","amount":300}`)
		req.Header.Set(IdempotencyHeader, "abc-123")
		return env.do(req)
	}
	assert.Equal(t, http.StatusCreated, send().Code)
	assert.Equal(t, http.StatusConflict, send().Code)

	snap, _ := env.service.Current()
	assert.Len(t, snap.Transactions, 1)
	assert.True(t, env.redis.Exists("finflow:idempotency:transactions:abc-123"))
}

func TestAPIRemoveUndoReset(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(jsonRequest(http.MethodPost, "/api/v1/transactions", `{"activity":"OFFICE_RENT","amount":800}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	ts := decodeState(t, rr).Snapshot.Transactions[0].Timestamp

	rr = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+url.PathEscape(ts), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	state := decodeState(t, rr)
	assert.Empty(t, state.Snapshot.Transactions)
	assert.True(t, state.CanUndo)
	assert.Equal(t, flow.Money(0), state.Snapshot.CashBalance.CheckingAccounts)

	rr = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+url.PathEscape(ts), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(httptest.NewRequest(http.MethodPost, "/api/v1/undo", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	state = decodeState(t, rr)
	require.Len(t, state.Snapshot.Transactions, 1)
	assert.Equal(t, ts, state.Snapshot.Transactions[0].Timestamp)

	rr = env.do(httptest.NewRequest(http.MethodPost, "/api/v1/undo", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeState(t, rr).Snapshot.Transactions, 1)

	rr = env.do(httptest.NewRequest(http.MethodPost, "/api/v1/reset", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeState(t, rr).Snapshot.Transactions)
}

func TestAPIActivities(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var out struct {
		Activities []ActivityVM `json:"activities"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Activities, len(flow.Activities()))
	first := out.Activities[0]
	assert.Equal(t, flow.WagesExpense, first.ID)
	assert.Equal(t, "Wages Expense", first.Label)
	assert.NotEmpty(t, first.Description)
	assert.False(t, first.Inflow)
}

func TestAPIStatementsJSONAndCSV(t *testing.T) {
	env := newTestEnv(t)
	env.do(jsonRequest(http.MethodPost, "/api/v1/transactions", `{"activity":"RETAIL_SALES","amount":200}`))
	env.do(jsonRequest(http.MethodPost, "/api/v1/transactions", `{"activity":"WAGES_EXPENSE","amount":50}`))

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var set struct {
		NetIncome flow.Money `json:"netIncome"`
		Income    struct {
			Title string `json:"title"`
		} `json:"income"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &set))
	assert.Equal(t, flow.FromFloat(150), set.NetIncome)
	assert.Equal(t, "Income Statement", set.Income.Title)

	rr = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/statements.csv", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "financial-statements.csv")
	records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"Statement", "Section", "Depth", "ID", "Label", "Value"}, records[0])
}
