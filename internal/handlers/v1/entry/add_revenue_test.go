package entry

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_AddRevenue_Success(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/revenue", AddRevenueBody{
		Category:    "Food",
		Amount:      "250.505",
		Description: "Refund",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body EntryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Food", body.Category)
	assert.Equal(t, "250.51", body.Amount)
	assert.Equal(t, "250.51", mustBalance(t, registry, "Food"))
}

func TestHTTP_AddRevenue_NegativeAmount(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/revenue", AddRevenueBody{
		Category: "Food",
		Amount:   "-10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "0.00", mustBalance(t, registry, "Food"))
}

func TestHTTP_AddRevenue_NonNumericAmount(t *testing.T) {
	api, registry := newEntryTestAPI(t)

	resp := api.Post("/v1/revenue", AddRevenueBody{
		Category: "Food",
		Amount:   "ten dollars",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "0.00", mustBalance(t, registry, "Food"))
}

func TestHTTP_AddRevenue_UnknownCategory(t *testing.T) {
	api, _ := newEntryTestAPI(t)

	resp := api.Post("/v1/revenue", AddRevenueBody{
		Category: "Missing",
		Amount:   "10",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
