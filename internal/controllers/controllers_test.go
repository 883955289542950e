package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	database.SetLevel(logrus.WarnLevel)
	services.SetLevel(logrus.WarnLevel)
	SetLevel(logrus.WarnLevel)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	restaurants := NewRestaurantController(services.NewRestaurantService(db))
	pizzas := NewPizzaController(services.NewPizzaService(db))
	restaurantPizzas := NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/restaurants", restaurants.GetAllRestaurants)
	v1.GET("/restaurants/:id", restaurants.GetRestaurantByID)
	v1.GET("/restaurants/:id/pizzas", restaurants.GetRestaurantPizzas)
	v1.POST("/restaurants", restaurants.CreateRestaurant)
	v1.PUT("/restaurants/:id", restaurants.UpdateRestaurant)
	v1.DELETE("/restaurants/:id", restaurants.DeleteRestaurant)
	v1.GET("/pizzas", pizzas.GetAllPizzas)
	v1.GET("/pizzas/:id", pizzas.GetPizzaByID)
	v1.GET("/pizzas/:id/restaurants", pizzas.GetPizzaRestaurants)
	v1.POST("/pizzas", pizzas.CreatePizza)
	v1.PUT("/pizzas/:id", pizzas.UpdatePizza)
	v1.DELETE("/pizzas/:id", pizzas.DeletePizza)
	v1.GET("/restaurant_pizzas", restaurantPizzas.GetAllRestaurantPizzas)
	v1.GET("/restaurant_pizzas/:id", restaurantPizzas.GetRestaurantPizzaByID)
	v1.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)
	v1.PATCH("/restaurant_pizzas/:id", restaurantPizzas.UpdateRestaurantPizzaPrice)
	v1.DELETE("/restaurant_pizzas/:id", restaurantPizzas.DeleteRestaurantPizza)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) models.APIError {
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

// createScenario creates Dominos, Margherita and a price 10 entry linking them
func createScenario(t *testing.T, router *gin.Engine) {
	w := doRequest(router, http.MethodPost, "/api/v1/restaurants", `{"name":"Dominos"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doRequest(router, http.MethodPost, "/api/v1/pizzas", `{"name":"Margherita","ingredients":"cheese, tomato"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doRequest(router, http.MethodPost, "/api/v1/restaurant_pizzas", `{"price":10,"restaurant_id":1,"pizza_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
