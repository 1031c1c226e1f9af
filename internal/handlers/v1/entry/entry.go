// Package entry holds the write-side handlers: revenue, expense, and
// transfer submissions. Each one parses its amount at the boundary and hands
// a typed action to the operator.
package entry

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// EntryResponse is the response body for a recorded entry.
type EntryResponse struct {
	Category string `json:"category" doc:"Category the entry was recorded against"`
	Amount   string `json:"amount" doc:"Decimal amount as stored, rounded to 2 places"`
}

// parseAmount converts the wire amount into a decimal, rejecting anything
// unparsable as an invalid-amount error before the action is built.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount",
			fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, raw))
	}
	return amount, nil
}
