// Package httperror maps ledger errors onto HTTP status codes so every
// handler reports the same code for the same failure.
package httperror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// FromLedger wraps err in a huma error with the status code matching its
// ledger error kind. Unrecognized errors become 500s.
func FromLedger(err error, message string) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrSelfTransfer):
		return huma.NewError(http.StatusBadRequest, message, err)
	case errors.Is(err, ledger.ErrUnknownCategory):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, ledger.ErrDuplicateName):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return huma.NewError(http.StatusUnprocessableEntity, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
