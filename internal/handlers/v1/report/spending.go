package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/httperror"
	"github.com/carson-networks/expense-ledger/internal/service"
)

// CategorySpending is one slice of the spending breakdown response.
type CategorySpending struct {
	Name         string `json:"name" doc:"Category name"`
	ExpenseTotal string `json:"expenseTotal" doc:"Decimal total of non-transfer expenses"`
	Percent      string `json:"percent" doc:"Share of overall spending, 0-100 with 2 decimals"`
}

// SpendingInput is the Huma input for the spending breakdown.
type SpendingInput struct{}

// SpendingResponseBody is the response body for the spending breakdown.
type SpendingResponseBody struct {
	Categories []CategorySpending `json:"categories" doc:"Per-category spending in creation order"`
}

// SpendingOutput is the Huma output for the spending breakdown.
type SpendingOutput struct {
	Body SpendingResponseBody
}

// spendingReporter is the interface for producing the spending breakdown.
type spendingReporter interface {
	SpendingBreakdown(ctx context.Context) ([]service.CategorySpending, error)
}

// SpendingHandler handles GET /v1/report/spending.
type SpendingHandler struct {
	ReportService spendingReporter
}

// NewSpendingHandler creates a new SpendingHandler.
func NewSpendingHandler(svc spendingReporter) *SpendingHandler {
	return &SpendingHandler{ReportService: svc}
}

// Register registers the spending breakdown endpoint with the Huma API.
func (h *SpendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "spending-breakdown",
		Method:      http.MethodGet,
		Path:        "/v1/report/spending",
		Summary:     "Spending breakdown",
		Description: "Returns every category's expense total and its share of overall spending. Transfers are excluded.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SpendingHandler) handle(ctx context.Context, input *SpendingInput) (*SpendingOutput, error) {
	breakdown, err := h.ReportService.SpendingBreakdown(ctx)
	if err != nil {
		return nil, httperror.FromLedger(err, "failed to build spending breakdown")
	}

	resp := SpendingResponseBody{
		Categories: make([]CategorySpending, len(breakdown)),
	}
	for i, slice := range breakdown {
		resp.Categories[i] = CategorySpending{
			Name:         slice.Name,
			ExpenseTotal: slice.ExpenseTotal.StringFixed(2),
			Percent:      slice.Percent.StringFixed(2),
		}
	}

	return &SpendingOutput{Body: resp}, nil
}
