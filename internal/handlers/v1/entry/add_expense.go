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

// AddExpenseBody is the request body for recording an expense.
type AddExpenseBody struct {
	Category    string `json:"category" minLength:"1" doc:"Exact stored category name"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount; sign is ignored, the entry is stored as a debit"`
	Description string `json:"description" doc:"Free-form description"`
}

// AddExpenseInput is the Huma input for recording an expense.
type AddExpenseInput struct {
	Body AddExpenseBody
}

// AddExpenseOutput is the response for recording an expense.
type AddExpenseOutput struct {
	Status int
	Body   EntryResponse
}

// AddExpenseHandler handles POST /v1/expense.
type AddExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewAddExpenseHandler creates a new AddExpenseHandler.
func NewAddExpenseHandler(op *operator.OperatorDelegator) *AddExpenseHandler {
	return &AddExpenseHandler{Operator: op}
}

// Register registers the add expense endpoint with the Huma API.
func (h *AddExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense",
		Summary:     "Record an expense",
		Description: "Appends a debit to a category, rejected when it would overdraw the balance.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *AddExpenseHandler) handle(ctx context.Context, input *AddExpenseInput) (*AddExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.AddExpense{
		Category:    input.Body.Category,
		Amount:      amount,
		Description: input.Body.Description,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromLedger(err, "failed to record expense")
	}

	if logData != nil {
		logData.AddData("category", input.Body.Category)
	}

	return &AddExpenseOutput{
		Status: http.StatusCreated,
		Body: EntryResponse{
			Category: input.Body.Category,
			Amount:   amount.Abs().Round(2).Neg().StringFixed(2),
		},
	}, nil
}
