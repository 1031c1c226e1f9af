package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/httperror"
)

// StatementInput is the Huma input for rendering a category statement.
type StatementInput struct {
	Name string `path:"name" doc:"Exact stored category name"`
}

// StatementOutput is the Huma output for a plain-text category statement.
type StatementOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// statementRenderer is the interface for rendering a category statement.
type statementRenderer interface {
	Statement(ctx context.Context, name string) (string, error)
}

// StatementHandler handles GET /v1/category/{name}/statement.
type StatementHandler struct {
	CategoryService statementRenderer
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc statementRenderer) *StatementHandler {
	return &StatementHandler{CategoryService: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *StatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-statement",
		Method:      http.MethodGet,
		Path:        "/v1/category/{name}/statement",
		Summary:     "Render a category statement",
		Description: "Returns the category as a fixed-width plain-text statement.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *StatementHandler) handle(ctx context.Context, input *StatementInput) (*StatementOutput, error) {
	statement, err := h.CategoryService.Statement(ctx, input.Name)
	if err != nil {
		return nil, httperror.FromLedger(err, "failed to render statement")
	}

	return &StatementOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(statement),
	}, nil
}
