package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/httperror"
	"github.com/carson-networks/expense-ledger/internal/logging"
	"github.com/carson-networks/expense-ledger/internal/operator"
	"github.com/carson-networks/expense-ledger/internal/operator/actions"
)

// AddRevenueBody is the request body for recording revenue.
type AddRevenueBody struct {
	Category    string `json:"category" minLength:"1" doc:"Exact stored category name"`
	Amount      string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
}

// AddRevenueInput is the Huma input for recording revenue.
type AddRevenueInput struct {
	Body AddRevenueBody
}

// AddRevenueOutput is the response for recording revenue.
type AddRevenueOutput struct {
	Status int
	Body   EntryResponse
}

// AddRevenueHandler handles POST /v1/revenue.
type AddRevenueHandler struct {
	Operator *operator.OperatorDelegator
}

// NewAddRevenueHandler creates a new AddRevenueHandler.
func NewAddRevenueHandler(op *operator.OperatorDelegator) *AddRevenueHandler {
	return &AddRevenueHandler{Operator: op}
}

// Register registers the add revenue endpoint with the Huma API.
func (h *AddRevenueHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-revenue",
		Method:      http.MethodPost,
		Path:        "/v1/revenue",
		Summary:     "Record revenue",
		Description: "Appends a credit to a category. Negative amounts are rejected.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *AddRevenueHandler) handle(ctx context.Context, input *AddRevenueInput) (*AddRevenueOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.AddRevenue{
		Category:    input.Body.Category,
		Amount:      amount,
		Description: input.Body.Description,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromLedger(err, "failed to record revenue")
	}

	if logData != nil {
		logData.AddData("category", input.Body.Category)
	}

	return &AddRevenueOutput{
		Status: http.StatusCreated,
		Body: EntryResponse{
			Category: input.Body.Category,
			Amount:   amount.Round(2).StringFixed(2),
		},
	}, nil
}
