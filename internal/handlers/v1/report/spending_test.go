package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-ledger/internal/service"
)

type mockSpendingReporter struct {
	mock.Mock
}

func (m *mockSpendingReporter) SpendingBreakdown(ctx context.Context) ([]service.CategorySpending, error) {
	args := m.Called(ctx)
	breakdown, _ := args.Get(0).([]service.CategorySpending)
	return breakdown, args.Error(1)
}

func newSpendingTestAPI(t *testing.T, svc spendingReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSpendingHandler(svc).Register(api)
	return api
}

func TestHTTP_SpendingBreakdown_Success(t *testing.T) {
	mockSvc := new(mockSpendingReporter)
	mockSvc.On("SpendingBreakdown", mock.Anything).Return([]service.CategorySpending{
		{
			Name:         "Food",
			ExpenseTotal: decimal.RequireFromString("75"),
			Percent:      decimal.RequireFromString("75"),
		},
		{
			Name:         "Clothing",
			ExpenseTotal: decimal.RequireFromString("25"),
			Percent:      decimal.RequireFromString("25"),
		},
	}, nil)

	resp := newSpendingTestAPI(t, mockSvc).Get("/v1/report/spending")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SpendingResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "Food", body.Categories[0].Name)
	assert.Equal(t, "75.00", body.Categories[0].ExpenseTotal)
	assert.Equal(t, "25.00", body.Categories[1].Percent)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SpendingBreakdown_Empty(t *testing.T) {
	mockSvc := new(mockSpendingReporter)
	mockSvc.On("SpendingBreakdown", mock.Anything).
		Return([]service.CategorySpending{}, nil)

	resp := newSpendingTestAPI(t, mockSvc).Get("/v1/report/spending")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SpendingResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Categories)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SpendingBreakdown_ServiceError(t *testing.T) {
	mockSvc := new(mockSpendingReporter)
	mockSvc.On("SpendingBreakdown", mock.Anything).
		Return(([]service.CategorySpending)(nil), errors.New("registry unavailable"))

	resp := newSpendingTestAPI(t, mockSvc).Get("/v1/report/spending")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
