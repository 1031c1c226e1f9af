package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

type AddExpense struct {
	Category    string
	Amount      decimal.Decimal
	Description string

	IAction
}

func (a *AddExpense) Perform(ctx context.Context, registry *ledger.Registry) error {
	_, err := registry.AddExpense(a.Category, a.Amount, a.Description)
	return err
}
