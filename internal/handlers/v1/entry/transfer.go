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

// TransferBody is the request body for transferring money between categories.
type TransferBody struct {
	From   string `json:"from" minLength:"1" doc:"Source category name"`
	To     string `json:"to" minLength:"1" doc:"Target category name"`
	Amount string `json:"amount" required:"true" doc:"Decimal amount to move"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// TransferResponse is the response body for a completed transfer.
type TransferResponse struct {
	From   string `json:"from" doc:"Source category name"`
	To     string `json:"to" doc:"Target category name"`
	Amount string `json:"amount" doc:"Decimal amount moved, rounded to 2 places"`
}

// TransferOutput is the response for a transfer.
type TransferOutput struct {
	Status int
	Body   TransferResponse
}

// TransferHandler handles POST /v1/transfer.
type TransferHandler struct {
	Operator *operator.OperatorDelegator
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op *operator.OperatorDelegator) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer-money",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer money",
		Description: "Debits the source category and credits the target with the same amount. Fails without mutating either side when the source balance is insufficient.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.TransferMoney{
		From:   input.Body.From,
		To:     input.Body.To,
		Amount: amount,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromLedger(err, "failed to transfer money")
	}

	if logData != nil {
		logData.AddData("from", input.Body.From)
		logData.AddData("to", input.Body.To)
	}

	return &TransferOutput{
		Status: http.StatusCreated,
		Body: TransferResponse{
			From:   input.Body.From,
			To:     input.Body.To,
			Amount: amount.Abs().Round(2).StringFixed(2),
		},
	}, nil
}
