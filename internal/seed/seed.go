// Package seed loads the demo dataset into a registry. It is called once from
// main behind a config flag; nothing here keeps state of its own.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// Apply creates the demo categories and replays their transaction history.
// The registry is expected to be empty; any duplicate name or rejected
// operation aborts the load.
func Apply(registry *ledger.Registry) error {
	for _, name := range []string{"Income", "Food", "Clothing", "Auto", "Grocery", "Savings"} {
		if _, err := registry.Create(name); err != nil {
			return fmt.Errorf("seed: create %s: %w", name, err)
		}
	}

	steps := []struct {
		run  func() error
		desc string
	}{
		{revenue(registry, "Income", "5000", "Salary from FIT"), "income salary"},
		{expense(registry, "Income", "488", "Rent"), "income rent"},
		{transfer(registry, "Income", "Food", "1000"), "income to food"},
		{transfer(registry, "Income", "Clothing", "500"), "income to clothing"},
		{transfer(registry, "Income", "Auto", "200"), "income to auto"},
		{transfer(registry, "Income", "Savings", "500"), "income to savings"},
		{expense(registry, "Food", "15.89", "Mangestu Restaurant"), "food restaurant"},
		{expense(registry, "Clothing", "25.55", "H&M"), "clothing h&m"},
		{expense(registry, "Clothing", "100", "Macy's"), "clothing macy's"},
		{revenue(registry, "Auto", "1000", "Sold my bike"), "auto bike sale"},
		{expense(registry, "Auto", "15", "Tyre Change"), "auto tyre change"},
		{transfer(registry, "Food", "Grocery", "50"), "food to grocery"},
		{expense(registry, "Grocery", "30.72", "Chili's"), "grocery chili's"},
		{expense(registry, "Grocery", "10.15", "Walmart"), "grocery walmart"},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("seed: %s: %w", step.desc, err)
		}
	}
	return nil
}

func revenue(r *ledger.Registry, name, amount, description string) func() error {
	return func() error {
		_, err := r.AddRevenue(name, decimal.RequireFromString(amount), description)
		return err
	}
}

func expense(r *ledger.Registry, name, amount, description string) func() error {
	return func() error {
		_, err := r.AddExpense(name, decimal.RequireFromString(amount), description)
		return err
	}
}

func transfer(r *ledger.Registry, from, to, amount string) func() error {
	return func() error {
		return r.Transfer(from, to, decimal.RequireFromString(amount))
	}
}
