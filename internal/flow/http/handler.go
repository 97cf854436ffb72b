package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/shared"
	"github.com/odyssey-erp/finflow/internal/view"
)

// FlowService is the subset of flow.Service the handlers depend on.
type FlowService interface {
	Current() (flow.Snapshot, uint64)
	CanUndo() bool
	Submit(ctx context.Context, activity flow.Activity, amount flow.Money) (flow.Snapshot, error)
	Remove(ctx context.Context, timestamp string) (flow.Snapshot, error)
	Undo(ctx context.Context) (flow.Snapshot, error)
	Reset(ctx context.Context) (flow.Snapshot, error)
}

// IdempotencyStore claims request keys for mutating API calls.
type IdempotencyStore interface {
	CheckAndInsert(ctx context.Context, key, scope string) error
	Delete(ctx context.Context, key, scope string) error
}

// Handler wires the dashboard pages and the JSON API.
type Handler struct {
	logger      *slog.Logger
	service     FlowService
	templates   *view.Engine
	csrf        *shared.CSRFManager
	idempotency IdempotencyStore
	validator   *validator.Validate
	exportLimit func(http.Handler) http.Handler
	cache       *statementCache
	builds      singleflight.Group
}

// NewHandler constructs the flow handler.
func NewHandler(logger *slog.Logger, service FlowService, templates *view.Engine, csrf *shared.CSRFManager, idempotency IdempotencyStore) (*Handler, error) {
	if service == nil {
		return nil, fmt.Errorf("flow handler: service required")
	}
	if templates == nil {
		return nil, fmt.Errorf("flow handler: template engine required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	limiter := httprate.Limit(30, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{
		logger:      logger,
		service:     service,
		templates:   templates,
		csrf:        csrf,
		idempotency: idempotency,
		validator:   validator.New(),
		exportLimit: limiter,
		cache:       &statementCache{},
	}, nil
}

// MountRoutes registers the server-rendered dashboard routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showDashboard)
	r.Post("/transactions", h.handleSubmit)
	r.Post("/transactions/remove", h.handleRemove)
	r.Post("/undo", h.handleUndo)
	r.Post("/reset", h.handleReset)
}

// MountAPI registers the JSON API. Callers mount it under /api/v1.
func (h *Handler) MountAPI(r chi.Router) {
	r.Get("/snapshot", h.apiSnapshot)
	r.Get("/activities", h.apiActivities)
	r.Get("/statements", h.apiStatements)
	r.With(h.exportLimit).Get("/statements.csv", h.apiStatementsCSV)
	r.Post("/transactions", h.apiSubmit)
	r.Delete("/transactions/{timestamp}", h.apiRemove)
	r.Post("/undo", h.apiUndo)
	r.Post("/reset", h.apiReset)
}
