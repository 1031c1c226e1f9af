package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

type AddRevenue struct {
	Category    string
	Amount      decimal.Decimal
	Description string

	IAction
}

func (a *AddRevenue) Perform(ctx context.Context, registry *ledger.Registry) error {
	_, err := registry.AddRevenue(a.Category, a.Amount, a.Description)
	return err
}
