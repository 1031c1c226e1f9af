package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-ledger/internal/handlers/v1/httperror"
	"github.com/carson-networks/expense-ledger/internal/service"
)

// GetCategoryInput is the Huma input for fetching a single category.
type GetCategoryInput struct {
	Name string `path:"name" doc:"Exact stored category name"`
}

// GetCategoryOutput is the Huma output for fetching a single category.
type GetCategoryOutput struct {
	Body Category
}

// categoryGetter is the interface for reading a single category.
type categoryGetter interface {
	GetCategory(ctx context.Context, name string) (*service.Category, error)
}

// GetCategoryHandler handles GET /v1/category/{name}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{name}",
		Summary:     "Get a category",
		Description: "Returns a category with its balance and expense total.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := h.CategoryService.GetCategory(ctx, input.Name)
	if err != nil {
		return nil, httperror.FromLedger(err, "failed to get category")
	}

	return &GetCategoryOutput{
		Body: Category{
			Name:         category.Name,
			Balance:      category.Balance.StringFixed(2),
			ExpenseTotal: category.ExpenseTotal.StringFixed(2),
		},
	}, nil
}
