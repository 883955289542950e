package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantPizzaScenario(t *testing.T) {
	router := setupRouter(t)
	createScenario(t, router)

	w := doRequest(router, http.MethodGet, "/api/v1/restaurant_pizzas/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	expected := `{"id":1,"price":10,"restaurant":{"id":1,"name":"Dominos","address":null},"pizza":{"id":1,"name":"Margherita","ingredients":"cheese, tomato"}}`
	assert.JSONEq(t, expected, w.Body.String())
}

func TestCreateRestaurantPizzaInvalidPrice(t *testing.T) {
	router := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/v1/restaurants", `{"name":"Dominos"}`)
	doRequest(router, http.MethodPost, "/api/v1/pizzas", `{"name":"Margherita"}`)

	for _, body := range []string{
		`{"price":31,"restaurant_id":1,"pizza_id":1}`,
		`{"price":0,"restaurant_id":1,"pizza_id":1}`,
	} {
		w := doRequest(router, http.MethodPost, "/api/v1/restaurant_pizzas", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		apiErr := decodeAPIError(t, w)
		assert.Equal(t, models.ErrValidationFailed, apiErr.Code)
		assert.Equal(t, "Price must be between 1 and 30", apiErr.Message)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/restaurant_pizzas", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateRestaurantPizzaUnknownRestaurant(t *testing.T) {
	router := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/v1/pizzas", `{"name":"Margherita"}`)

	w := doRequest(router, http.MethodPost, "/api/v1/restaurant_pizzas", `{"price":10,"restaurant_id":42,"pizza_id":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrConstraintViolation, apiErr.Code)
	assert.Equal(t, "foreign_key", apiErr.Details["constraint"])
	assert.Equal(t, "restaurant_id", apiErr.Details["column"])
}

func TestCreateRestaurantPizzaMissingFields(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/restaurant_pizzas", `{"restaurant_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrBadRequest, apiErr.Code)
	assert.Equal(t, "required", apiErr.Details["Price"])
	assert.Equal(t, "required", apiErr.Details["PizzaID"])

	w = doRequest(router, http.MethodPost, "/api/v1/restaurant_pizzas", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRestaurantPizzaPrice(t *testing.T) {
	router := setupRouter(t)
	createScenario(t, router)

	w := doRequest(router, http.MethodPatch, "/api/v1/restaurant_pizzas/1", `{"price":25}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view models.RestaurantPizzaView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 25, view.Price)
	assert.Equal(t, "Dominos", view.Restaurant.Name)

	w = doRequest(router, http.MethodPatch, "/api/v1/restaurant_pizzas/1", `{"price":-3}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodPatch, "/api/v1/restaurant_pizzas/9", `{"price":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRestaurantPizza(t *testing.T) {
	router := setupRouter(t)
	createScenario(t, router)

	w := doRequest(router, http.MethodDelete, "/api/v1/restaurant_pizzas/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/restaurant_pizzas/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/restaurants/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
