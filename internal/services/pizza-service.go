package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas, optionally filtered by a partial name
	GetAllPizzas(ctx context.Context, name string) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// GetRestaurantsByPizza retrieves the restaurants selling a pizza
	GetRestaurantsByPizza(ctx context.Context, id uint) ([]models.Restaurant, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// UpdatePizza updates an existing pizza in the database
	UpdatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza that no restaurant sells anymore
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context, name string) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	query := s.db.WithContext(ctx).Order("id")
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where(nameContains, containsPattern(name))
	}
	if err := query.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) GetRestaurantsByPizza(ctx context.Context, id uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Pizza{}, id).Error; err != nil {
			return err
		}
		return tx.Distinct("restaurants.*").
			Joins("JOIN restaurant_pizzas ON restaurant_pizzas.restaurant_id = restaurants.id").
			Where("restaurant_pizzas.pizza_id = ?", id).
			Order("restaurants.id").
			Find(&restaurants).Error
	})
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	if err := requireValue(strings.TrimSpace(pizza.Name) == "", "pizzas", "name"); err != nil {
		return models.Pizza{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("RestaurantPizzas").Create(&pizza).Error
	})
	if err != nil {
		return models.Pizza{}, translateStoreError(err, "pizzas")
	}

	log.WithFields(logrus.Fields{"pizza_id": pizza.ID, "name": pizza.Name}).Info("Pizza created")
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	if err := requireValue(strings.TrimSpace(pizza.Name) == "", "pizzas", "name"); err != nil {
		return models.Pizza{}, err
	}

	var updated models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, pizza.ID).Error; err != nil {
			return err
		}
		updated.Name = pizza.Name
		updated.Ingredients = pizza.Ingredients
		return tx.Model(&updated).Select("name", "ingredients").Updates(&updated).Error
	})
	if err != nil {
		return models.Pizza{}, translateStoreError(err, "pizzas")
	}
	return updated, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Pizza{}, id).Error; err != nil {
			return err
		}
		if err := restrictDelete(tx, "pizzas", "pizza_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.Pizza{}, id).Error
	})
	if err != nil {
		return translateDeleteError(err, "pizzas", "pizza_id")
	}

	log.WithField("pizza_id", id).Info("Pizza deleted")
	return nil
}
