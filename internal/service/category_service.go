package service

import (
	"context"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// CategoryService handles category read operations.
type CategoryService struct {
	registry *ledger.Registry
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(registry *ledger.Registry) *CategoryService {
	return &CategoryService{registry: registry}
}

// GetCategory returns the named category with its derived totals.
func (s *CategoryService) GetCategory(ctx context.Context, name string) (*Category, error) {
	balance, err := s.registry.Balance(name)
	if err != nil {
		return nil, err
	}
	expenseTotal, err := s.registry.ExpenseTotal(name)
	if err != nil {
		return nil, err
	}
	return &Category{
		Name:         name,
		Balance:      balance,
		ExpenseTotal: expenseTotal,
	}, nil
}

// ListCategories returns all categories in creation order with their totals.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	names := s.registry.Names()
	categories := make([]Category, 0, len(names))
	for _, name := range names {
		category, err := s.GetCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

// ListTransactions returns the named category's history in insertion order.
func (s *CategoryService) ListTransactions(ctx context.Context, name string) ([]Transaction, error) {
	rows, err := s.registry.Transactions(name)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromLedger(row)
	}
	return converted, nil
}

// Statement renders the named category as a fixed-width text statement.
func (s *CategoryService) Statement(ctx context.Context, name string) (string, error) {
	return s.registry.Statement(name)
}
