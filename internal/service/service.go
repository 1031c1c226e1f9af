package service

import (
	"github.com/carson-networks/expense-ledger/internal/ledger"
)

// Service holds all read-side services over the ledger registry. Mutations go
// through the operator instead.
type Service struct {
	Category *CategoryService
	Report   *ReportService
}

// NewService creates a new Service backed by the given registry.
func NewService(registry *ledger.Registry) *Service {
	return &Service{
		Category: NewCategoryService(registry),
		Report:   NewReportService(registry),
	}
}
