package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests on the pizzas sold by restaurants
type RestaurantPizzaController interface {
	GetAllRestaurantPizzas(c *gin.Context)
	GetRestaurantPizzaByID(c *gin.Context)
	CreateRestaurantPizza(c *gin.Context)
	UpdateRestaurantPizzaPrice(c *gin.Context)
	DeleteRestaurantPizza(c *gin.Context)
}

// RestaurantPizzaRequest is the body accepted when adding a pizza to a restaurant.
// Pointers tell a missing field apart from a zero value.
type RestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required"`
	RestaurantID *uint `json:"restaurant_id" binding:"required"`
	PizzaID      *uint `json:"pizza_id" binding:"required"`
}

// PriceRequest is the body accepted when changing a price
type PriceRequest struct {
	Price *int `json:"price" binding:"required"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} models.RestaurantPizzaView
// @Failure 500 {object} models.APIError
// @Router /api/v1/restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	items, err := c.service.GetAllRestaurantPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaViews(items))
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "Restaurant pizza ID"
// @Success 200 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetRestaurantPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaView(item))
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description The price must be between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body RestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req RestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	item, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), models.RestaurantPizza{
		Price:        *req.Price,
		RestaurantID: *req.RestaurantID,
		PizzaID:      *req.PizzaID,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaView(item))
}

// UpdateRestaurantPizzaPrice godoc
// @Summary Change the price of a restaurant pizza
// @Description The price must be between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param id path int true "Restaurant pizza ID"
// @Param price body PriceRequest true "New price"
// @Success 200 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/restaurant_pizzas/{id} [patch]
func (c *restaurantPizzaController) UpdateRestaurantPizzaPrice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req PriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	item, err := c.service.UpdatePrice(ctx.Request.Context(), id, *req.Price)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaView(item))
}

// DeleteRestaurantPizza godoc
// @Summary Remove a pizza from a restaurant
// @Tags restaurant_pizzas
// @Param id path int true "Restaurant pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurantPizza(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
