package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	GetAllRestaurants(c *gin.Context)
	GetRestaurantByID(c *gin.Context)
	// GetRestaurantPizzas retrieves the pizzas a restaurant sells
	GetRestaurantPizzas(c *gin.Context)
	CreateRestaurant(c *gin.Context)
	UpdateRestaurant(c *gin.Context)
	DeleteRestaurant(c *gin.Context)
}

// RestaurantRequest is the body accepted when creating or updating a restaurant
type RestaurantRequest struct {
	Name    string  `json:"name" binding:"max=255"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

type restaurantController struct {
	service services.RestaurantService
}

func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Tags restaurants
// @Produce json
// @Param name query string false "Filter by restaurant name (partial match)"
// @Success 200 {array} models.RestaurantView
// @Failure 500 {object} models.APIError
// @Router /api/v1/restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantViews(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantView(restaurant))
}

// GetRestaurantPizzas godoc
// @Summary Get the pizzas a restaurant sells
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/restaurants/{id}/pizzas [get]
func (c *restaurantController) GetRestaurantPizzas(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	pizzas, err := c.service.GetPizzasByRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaViews(pizzas))
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body RestaurantRequest true "Restaurant"
// @Success 201 {object} models.RestaurantView
// @Failure 400 {object} models.APIError
// @Router /api/v1/restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req RestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	restaurant, err := c.service.CreateRestaurant(ctx.Request.Context(), models.Restaurant{Name: req.Name, Address: req.Address})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantView(restaurant))
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Replace the name and address of a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param restaurant body RestaurantRequest true "Restaurant"
// @Success 200 {object} models.RestaurantView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/restaurants/{id} [put]
func (c *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req RestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	restaurant, err := c.service.UpdateRestaurant(ctx.Request.Context(), models.Restaurant{ID: id, Name: req.Name, Address: req.Address})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantView(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant that no longer sells any pizza
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
