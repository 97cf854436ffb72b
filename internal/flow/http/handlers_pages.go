package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/shared"
	"github.com/odyssey-erp/finflow/internal/view"
)

type submitForm struct {
	Activity string  `validate:"required"`
	Amount   float64 `validate:"gt=0,lte=1000000000000"`
}

func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	var csrfToken string
	if h.csrf != nil {
		csrfToken, _ = h.csrf.EnsureToken(r.Context(), sess)
	}
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	snap, set, err := h.statementsFor(r.Context())
	if err != nil {
		h.logger.Error("build statements", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	vm := DashboardVM{
		CSRFToken:    csrfToken,
		Categories:   flow.Categories(),
		Statements:   set,
		Transactions: snap.Transactions,
		CanUndo:      snap.CanUndo(),
	}
	data := view.TemplateData{
		Title:       "Dashboard",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        vm,
	}
	if err := h.templates.Render(w, "pages/dashboard.html", data); err != nil {
		h.logger.Error("render dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := submitForm{Activity: strings.TrimSpace(r.PostFormValue("activity"))}
	rawAmount := strings.TrimSpace(r.PostFormValue("amount"))
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		h.redirectWithFlash(w, r, shared.FlashError, "Amount must be a number.")
		return
	}
	form.Amount = amount
	if err := h.validator.Struct(form); err != nil {
		var msgs []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			msgs = append(msgs, fieldMessage(fieldErr))
		}
		h.redirectWithFlash(w, r, shared.FlashError, strings.Join(msgs, " "))
		return
	}
	activity, _ := flow.ParseActivity(form.Activity)
	value := flow.FromFloat(form.Amount)
	if _, err := h.service.Submit(r.Context(), activity, value); err != nil {
		h.logger.Warn("submit transaction", slog.String("activity", string(activity)), slog.Any("error", err))
		h.redirectWithFlash(w, r, shared.FlashError, flashMessage(err))
		return
	}
	h.redirectWithFlash(w, r, shared.FlashSuccess, fmt.Sprintf("Recorded %s of %s.", activity.Label(), view.FormatMoney(value)))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	timestamp := strings.TrimSpace(r.PostFormValue("timestamp"))
	if _, err := h.service.Remove(r.Context(), timestamp); err != nil {
		h.redirectWithFlash(w, r, shared.FlashError, flashMessage(err))
		return
	}
	h.redirectWithFlash(w, r, shared.FlashSuccess, "Transaction removed. Use undo to restore it.")
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	if !h.service.CanUndo() {
		h.redirectWithFlash(w, r, shared.FlashInfo, "Nothing to undo.")
		return
	}
	if _, err := h.service.Undo(r.Context()); err != nil {
		h.redirectWithFlash(w, r, shared.FlashError, flashMessage(err))
		return
	}
	h.redirectWithFlash(w, r, shared.FlashSuccess, "Transaction restored.")
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Reset(r.Context()); err != nil {
		h.redirectWithFlash(w, r, shared.FlashError, flashMessage(err))
		return
	}
	h.redirectWithFlash(w, r, shared.FlashInfo, "All balances and transactions were cleared.")
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	shared.AddFlash(r.Context(), kind, message)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Activity":
		return "Please choose an activity from the list."
	case "Amount":
		return amountMessage
	}
	return fe.Error()
}
