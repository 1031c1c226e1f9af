package actions

import (
	"context"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

type IAction interface {
	Perform(ctx context.Context, registry *ledger.Registry) error
}
