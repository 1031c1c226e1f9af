package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// Category represents a category in the service layer, with its derived
// totals resolved.
type Category struct {
	Name         string
	Balance      decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Transfer    bool
	CreatedAt   time.Time
}

// CategorySpending is one slice of the spending breakdown: a category's
// non-transfer expense total and its share of overall spending.
type CategorySpending struct {
	Name         string
	ExpenseTotal decimal.Decimal
	Percent      decimal.Decimal
}

func transactionFromLedger(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Transfer:    tx.Transfer,
		CreatedAt:   tx.CreatedAt,
	}
}
