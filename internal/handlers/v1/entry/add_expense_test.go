package entry

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_AddExpense_Success(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/expense", AddExpenseBody{
		Category:    "Income",
		Amount:      "488",
		Description: "Rent",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body EntryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "-488.00", body.Amount)
	assert.Equal(t, "4512.00", mustBalance(t, registry, "Income"))
}

func TestHTTP_AddExpense_InsufficientFunds(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/expense", AddExpenseBody{
		Category:    "Food",
		Amount:      "15",
		Description: "Tyre Change",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "0.00", mustBalance(t, registry, "Food"))
}

func TestHTTP_AddExpense_InvalidAmount(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/expense", AddExpenseBody{
		Category: "Income",
		Amount:   "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "5000.00", mustBalance(t, registry, "Income"))
}

func TestHTTP_AddExpense_UnknownCategory(t *testing.T) {
	api, _ := newEntryTestAPI(t)

	resp := api.Post("/v1/expense", AddExpenseBody{
		Category: "Missing",
		Amount:   "10",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_AddExpense_MissingCategoryField(t *testing.T) {
	api, _ := newEntryTestAPI(t)

	// Huma schema validation rejects the request before the handler runs.
	resp := api.Post("/v1/expense", AddExpenseBody{Amount: "10"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
