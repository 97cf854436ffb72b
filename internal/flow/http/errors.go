package http

import (
	"errors"
	"fmt"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/platform/httpx"
)

// translateError wraps flow failures with the httpx sentinel that carries
// the matching status code.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flow.ErrUnknownActivity), errors.Is(err, flow.ErrInvalidAmount):
		return fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	case errors.Is(err, flow.ErrTransactionNotFound):
		return fmt.Errorf("%w: %v", httpx.ErrNotFound, err)
	case errors.Is(err, flow.ErrMachineBusy):
		return fmt.Errorf("%w: %v", httpx.ErrConflict, err)
	}
	return err
}

const amountMessage = "Amount must be greater than zero and at most 1,000,000,000,000."

// flashMessage is the user-facing text for a failed dashboard action.
func flashMessage(err error) string {
	switch {
	case errors.Is(err, flow.ErrUnknownActivity):
		return "Please choose an activity from the list."
	case errors.Is(err, flow.ErrInvalidAmount):
		return amountMessage
	case errors.Is(err, flow.ErrTransactionNotFound):
		return "That transaction no longer exists."
	case errors.Is(err, flow.ErrMachineBusy):
		return "Another change is in progress, please retry."
	}
	return "Something went wrong, please retry."
}
