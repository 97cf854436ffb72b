package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/finflow/internal/flow"
	flowhttp "github.com/odyssey-erp/finflow/internal/flow/http"
	"github.com/odyssey-erp/finflow/internal/flow/store"
	"github.com/odyssey-erp/finflow/internal/observability"
	"github.com/odyssey-erp/finflow/internal/shared"
	"github.com/odyssey-erp/finflow/internal/view"
)

var csrfMeta = regexp.MustCompile(`name="csrf-token" content="([^"]+)"`)

func newTestRouter(t *testing.T) (http.Handler, *flow.Service) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &Config{AppEnv: "test", AppRequestTimeout: 5 * time.Second}
	metrics := observability.NewMetrics()
	svc := flow.NewService(context.Background(), flow.ServiceOptions{
		Repository: store.NewMemory(),
		Recorder:   metrics,
		Logger:     logger,
	})
	engine, err := view.NewEngine()
	require.NoError(t, err)
	csrf := shared.NewCSRFManager("csrf-secret")
	handler, err := flowhttp.NewHandler(logger, svc, engine, csrf, shared.NewIdempotencyStore(client, time.Hour))
	require.NoError(t, err)

	router := NewRouter(RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: shared.NewSessionManager(client, "finflow_session", time.Hour, false),
		CSRFManager:    csrf,
		FlowHandler:    handler,
		Metrics:        metrics,
	})
	return router, svc
}

func TestRouterHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestRouterServesStaticAssets(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
}

func TestRouterDashboardRoundTrip(t *testing.T) {
	router, svc := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	match := csrfMeta.FindStringSubmatch(rr.Body.String())
	require.Len(t, match, 2)
	token := match[1]

	form := url.Values{"activity": {"RETAIL_SALES"}, "amount": {"100"}}
	post := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rr = post(form)
	assert.Equal(t, http.StatusForbidden, rr.Code, "missing csrf token")

	form.Set(shared.CSRFFormField, token)
	rr = post(form)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	snap, _ := svc.Current()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, flow.FromFloat(100), snap.CashBalance.CheckingAccounts)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Recorded Retail Sales of $100.00.")
}

func TestRouterAPIDoesNotRequireCSRF(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(`{"activity":"BANK_LOAN_RECEIPT","amount":1000}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Result().Cookies())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `finflow_transitions_total{activity="BANK_LOAN_RECEIPT",event="submit"} 1`)
	assert.Contains(t, body, "finflow_http_requests_total")
}
