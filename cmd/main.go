package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-api/docs"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants sell them at
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	log.SetLevel(configuration.Level())
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)

	// Initialize database connection
	db := setupDatabase(configuration)
	defer database.Close(db)

	// Initialize Gin router
	router := setupRouter(db, configuration)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds it when SEED_DATA is set
func setupDatabase(conf *config.Config) *gorm.DB {
	database.SetLevel(conf.Level())
	services.SetLevel(conf.Level())

	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		checkPanicErr(database.Seed(db))
	}
	return db
}

// setupRouter initializes the Gin router with its middleware and routes
func setupRouter(db *gorm.DB, conf *config.Config) *gin.Engine {
	controllers.SetLevel(conf.Level())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log.StandardLogger()))
	router.Use(middleware.CORS(conf.CORSAllowedOrigins))

	setupRoutes(router, db)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, db *gorm.DB) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", restaurantController.GetAllRestaurants)
			restaurants.GET("/:id", restaurantController.GetRestaurantByID)
			restaurants.GET("/:id/pizzas", restaurantController.GetRestaurantPizzas)
			restaurants.POST("", restaurantController.CreateRestaurant)
			restaurants.PUT("/:id", restaurantController.UpdateRestaurant)
			restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
		}

		pizzas := v1.Group("/pizzas")
		{
			pizzas.GET("", pizzaController.GetAllPizzas)
			pizzas.GET("/:id", pizzaController.GetPizzaByID)
			pizzas.GET("/:id/restaurants", pizzaController.GetPizzaRestaurants)
			pizzas.POST("", pizzaController.CreatePizza)
			pizzas.PUT("/:id", pizzaController.UpdatePizza)
			pizzas.DELETE("/:id", pizzaController.DeletePizza)
		}

		restaurantPizzas := v1.Group("/restaurant_pizzas")
		{
			restaurantPizzas.GET("", restaurantPizzaController.GetAllRestaurantPizzas)
			restaurantPizzas.GET("/:id", restaurantPizzaController.GetRestaurantPizzaByID)
			restaurantPizzas.POST("", restaurantPizzaController.CreateRestaurantPizza)
			restaurantPizzas.PATCH("/:id", restaurantPizzaController.UpdateRestaurantPizzaPrice)
			restaurantPizzas.DELETE("/:id", restaurantPizzaController.DeleteRestaurantPizza)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-restaurant-api",
	})
}
