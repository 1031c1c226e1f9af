package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-ledger/internal/ledger"
	"github.com/carson-networks/expense-ledger/internal/service"
)

type mockCategoryGetter struct {
	mock.Mock
}

func (m *mockCategoryGetter) GetCategory(ctx context.Context, name string) (*service.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*service.Category)
	return category, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc categoryGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetCategoryHandler(svc).Register(api)
	return api
}

func TestHTTP_GetCategory_Success(t *testing.T) {
	mockSvc := new(mockCategoryGetter)
	mockSvc.On("GetCategory", mock.Anything, "Income").Return(&service.Category{
		Name:         "Income",
		Balance:      decimal.RequireFromString("3512"),
		ExpenseTotal: decimal.RequireFromString("488"),
	}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/category/Income")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Category
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Income", body.Name)
	assert.Equal(t, "3512.00", body.Balance)
	assert.Equal(t, "488.00", body.ExpenseTotal)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetCategory_Unknown(t *testing.T) {
	mockSvc := new(mockCategoryGetter)
	mockSvc.On("GetCategory", mock.Anything, "Missing").
		Return((*service.Category)(nil), ledger.ErrUnknownCategory)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/category/Missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
