package entry

import (
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-ledger/internal/ledger"
	"github.com/carson-networks/expense-ledger/internal/operator"
)

// newEntryTestAPI wires a real registry and single-worker delegator behind
// all three entry handlers, pre-creating Income (balance 5000) and Food.
func newEntryTestAPI(t *testing.T) (humatest.TestAPI, *ledger.Registry) {
	t.Helper()
	registry := ledger.NewRegistry()
	for _, name := range []string{"Income", "Food"} {
		_, err := registry.Create(name)
		assert.NoError(t, err)
	}
	_, err := registry.AddRevenue("Income", decimal.RequireFromString("5000"), "Salary")
	assert.NoError(t, err)

	delegator := operator.NewOperatorDelegator(registry, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewAddRevenueHandler(delegator).Register(api)
	NewAddExpenseHandler(delegator).Register(api)
	NewTransferHandler(delegator).Register(api)
	return api, registry
}

func mustBalance(t *testing.T, registry *ledger.Registry, name string) string {
	t.Helper()
	balance, err := registry.Balance(name)
	assert.NoError(t, err)
	return balance.StringFixed(2)
}
