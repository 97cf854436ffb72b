package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
	"github.com/odyssey-erp/finflow/internal/platform/httpx"
	"github.com/odyssey-erp/finflow/internal/shared"
)

// IdempotencyHeader lets clients retry POST /transactions safely.
const IdempotencyHeader = "Idempotency-Key"

const idempotencyScope = "transactions"

type submitRequest struct {
	Activity string  `json:"activity" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0,lte=1000000000000"`
}

func (h *Handler) apiSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.service.Current()
	httpx.JSON(w, http.StatusOK, newStateResponse(snap))
}

func (h *Handler) apiActivities(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"activities": activityList()})
}

func (h *Handler) apiStatements(w http.ResponseWriter, r *http.Request) {
	_, set, err := h.statementsFor(r.Context())
	if err != nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, set)
}

func (h *Handler) apiStatementsCSV(w http.ResponseWriter, r *http.Request) {
	_, set, err := h.statementsFor(r.Context())
	if err != nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-statements.csv"`)
	if err := statements.WriteCSV(w, set); err != nil {
		h.logger.Error("write statements csv", slog.Any("error", err))
	}
}

func (h *Handler) apiSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[strings.ToLower(fieldErr.Field())] = fieldMessage(fieldErr)
		}
		httpx.ValidationProblem(w, fields)
		return
	}
	activity, ok := flow.ParseActivity(req.Activity)
	if !ok {
		httpx.ValidationProblem(w, map[string]string{"activity": "unknown activity " + req.Activity})
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
	if key != "" && h.idempotency != nil {
		if err := h.idempotency.CheckAndInsert(r.Context(), key, idempotencyScope); err != nil {
			if errors.Is(err, shared.ErrIdempotencyConflict) {
				httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
				return
			}
			h.logger.Error("idempotency check", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
	}

	snap, err := h.service.Submit(r.Context(), activity, flow.FromFloat(req.Amount))
	if err != nil {
		if key != "" && h.idempotency != nil {
			if delErr := h.idempotency.Delete(r.Context(), key, idempotencyScope); delErr != nil {
				h.logger.Warn("release idempotency key", slog.Any("error", delErr))
			}
		}
		httpx.RespondError(w, translateError(err))
		return
	}
	httpx.JSON(w, http.StatusCreated, newStateResponse(snap))
}

func (h *Handler) apiRemove(w http.ResponseWriter, r *http.Request) {
	timestamp, err := url.PathUnescape(chi.URLParam(r, "timestamp"))
	if err != nil {
		httpx.RespondError(w, translateError(flow.ErrTransactionNotFound))
		return
	}
	snap, err := h.service.Remove(r.Context(), timestamp)
	if err != nil {
		httpx.RespondError(w, translateError(err))
		return
	}
	httpx.JSON(w, http.StatusOK, newStateResponse(snap))
}

func (h *Handler) apiUndo(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Undo(r.Context())
	if err != nil {
		httpx.RespondError(w, translateError(err))
		return
	}
	httpx.JSON(w, http.StatusOK, newStateResponse(snap))
}

func (h *Handler) apiReset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Reset(r.Context())
	if err != nil {
		httpx.RespondError(w, translateError(err))
		return
	}
	httpx.JSON(w, http.StatusOK, newStateResponse(snap))
}
