package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

type TransferMoney struct {
	From   string
	To     string
	Amount decimal.Decimal

	IAction
}

func (t *TransferMoney) Perform(ctx context.Context, registry *ledger.Registry) error {
	return registry.Transfer(t.From, t.To, t.Amount)
}
