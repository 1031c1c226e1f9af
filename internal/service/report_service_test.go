package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

func TestSpendingBreakdown_PercentagesSumAcrossCategories(t *testing.T) {
	registry := ledger.NewRegistry()
	for _, name := range []string{"Food", "Clothing"} {
		_, err := registry.Create(name)
		assert.NoError(t, err)
		_, err = registry.AddRevenue(name, decimal.RequireFromString("500"), "seed")
		assert.NoError(t, err)
	}
	_, err := registry.AddExpense("Food", decimal.RequireFromString("75"), "Restaurant")
	assert.NoError(t, err)
	_, err = registry.AddExpense("Clothing", decimal.RequireFromString("25"), "H&M")
	assert.NoError(t, err)

	breakdown, err := NewReportService(registry).SpendingBreakdown(context.Background())
	assert.NoError(t, err)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, "Food", breakdown[0].Name)
	assert.Equal(t, "75.00", breakdown[0].ExpenseTotal.StringFixed(2))
	assert.Equal(t, "75.00", breakdown[0].Percent.StringFixed(2))
	assert.Equal(t, "25.00", breakdown[1].Percent.StringFixed(2))
}

func TestSpendingBreakdown_ExcludesTransfers(t *testing.T) {
	registry := ledger.NewRegistry()
	_, _ = registry.Create("Income")
	_, _ = registry.Create("Savings")
	_, err := registry.AddRevenue("Income", decimal.RequireFromString("1000"), "Salary")
	assert.NoError(t, err)
	assert.NoError(t, registry.Transfer("Income", "Savings", decimal.RequireFromString("400")))

	breakdown, err := NewReportService(registry).SpendingBreakdown(context.Background())
	assert.NoError(t, err)
	for _, slice := range breakdown {
		assert.Equal(t, "0.00", slice.ExpenseTotal.StringFixed(2), "category %s", slice.Name)
		assert.True(t, slice.Percent.IsZero())
	}
}

func TestSpendingBreakdown_EmptyRegistry(t *testing.T) {
	breakdown, err := NewReportService(ledger.NewRegistry()).SpendingBreakdown(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, breakdown)
}
