package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/httperror"
	"github.com/carson-networks/expense-ledger/internal/logging"
	"github.com/carson-networks/expense-ledger/internal/service"
)

// ListTransactionsInput is the Huma input for listing a category's transactions.
type ListTransactionsInput struct {
	Name string `path:"name" doc:"Exact stored category name"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Entries in insertion order"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing a category's transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, name string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/category/{name}/transactions.
type ListTransactionsHandler struct {
	CategoryService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{CategoryService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/category/{name}/transactions",
		Summary:     "List transactions",
		Description: "Returns a category's full transaction history in insertion order.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions, err := h.CategoryService.ListTransactions(ctx, input.Name)
	if err != nil {
		return nil, httperror.FromLedger(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID.String(),
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
			Transfer:    tx.Transfer,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
