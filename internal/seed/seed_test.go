package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

func TestApply_Balances(t *testing.T) {
	registry := ledger.NewRegistry()
	assert.NoError(t, Apply(registry))

	expected := map[string]string{
		"Income":   "2312.00",
		"Food":     "934.11",
		"Clothing": "374.45",
		"Auto":     "1185.00",
		"Grocery":  "9.28",
		"Savings":  "500.00",
	}
	for name, want := range expected {
		balance, err := registry.Balance(name)
		assert.NoError(t, err)
		assert.Equal(t, want, balance.StringFixed(2), "balance for %s", name)
	}
}

func TestApply_ExpenseTotalsExcludeTransfers(t *testing.T) {
	registry := ledger.NewRegistry()
	assert.NoError(t, Apply(registry))

	expected := map[string]string{
		"Income":   "488.00",
		"Food":     "15.89",
		"Clothing": "125.55",
		"Auto":     "15.00",
		"Grocery":  "40.87",
		"Savings":  "0.00",
	}
	for name, want := range expected {
		total, err := registry.ExpenseTotal(name)
		assert.NoError(t, err)
		assert.Equal(t, want, total.StringFixed(2), "expense total for %s", name)
	}
}

func TestApply_CategoryOrder(t *testing.T) {
	registry := ledger.NewRegistry()
	assert.NoError(t, Apply(registry))

	assert.Equal(t,
		[]string{"Income", "Food", "Clothing", "Auto", "Grocery", "Savings"},
		registry.Names())
}

func TestApply_FailsOnNonEmptyRegistry(t *testing.T) {
	registry := ledger.NewRegistry()
	_, err := registry.Create("Income")
	assert.NoError(t, err)

	assert.ErrorIs(t, Apply(registry), ledger.ErrDuplicateName)
}
