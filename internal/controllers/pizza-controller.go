package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// GetPizzaRestaurants retrieves the restaurants selling a pizza
	GetPizzaRestaurants(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

// PizzaRequest is the body accepted when creating or updating a pizza
type PizzaRequest struct {
	Name        string  `json:"name" binding:"max=255"`
	Ingredients *string `json:"ingredients" binding:"omitempty,max=1024"`
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *pizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with optional filtering
// @Tags pizzas
// @Produce json
// @Param name query string false "Filter by pizza name (partial match)"
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaViews(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaView(pizza))
}

// GetPizzaRestaurants godoc
// @Summary Get the restaurants selling a pizza
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {array} models.RestaurantView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id}/restaurants [get]
func (c *pizzaController) GetPizzaRestaurants(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	restaurants, err := c.service.GetRestaurantsByPizza(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantViews(restaurants))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body PizzaRequest true "Pizza"
// @Success 201 {object} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), models.Pizza{Name: req.Name, Ingredients: req.Ingredients})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewPizzaView(pizza))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Replace the name and ingredients of a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body PizzaRequest true "Pizza"
// @Success 200 {object} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [put]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), models.Pizza{ID: id, Name: req.Name, Ingredients: req.Ingredients})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaView(pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza no restaurant sells anymore
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
