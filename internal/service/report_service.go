package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

var oneHundred = decimal.NewFromInt(100)

// ReportService produces spending reports across categories.
type ReportService struct {
	registry *ledger.Registry
}

// NewReportService creates a new ReportService.
func NewReportService(registry *ledger.Registry) *ReportService {
	return &ReportService{registry: registry}
}

// SpendingBreakdown returns every category's non-transfer expense total and
// its percentage of overall spending, in category creation order. Percentages
// are zero when nothing has been spent anywhere.
func (s *ReportService) SpendingBreakdown(ctx context.Context) ([]CategorySpending, error) {
	names := s.registry.Names()
	breakdown := make([]CategorySpending, 0, len(names))
	overall := decimal.Zero

	for _, name := range names {
		total, err := s.registry.ExpenseTotal(name)
		if err != nil {
			return nil, err
		}
		overall = overall.Add(total)
		breakdown = append(breakdown, CategorySpending{
			Name:         name,
			ExpenseTotal: total,
		})
	}

	if overall.IsZero() {
		return breakdown, nil
	}

	for i := range breakdown {
		breakdown[i].Percent = breakdown[i].ExpenseTotal.Mul(oneHundred).Div(overall).Round(2)
	}
	return breakdown, nil
}
