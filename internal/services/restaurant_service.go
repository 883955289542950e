package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurants table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants, optionally filtered by a partial name
	GetAllRestaurants(ctx context.Context, name string) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// GetPizzasByRestaurant retrieves the pizzas sold by a restaurant
	GetPizzasByRestaurant(ctx context.Context, id uint) ([]models.Pizza, error)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant replaces the name and address of an existing restaurant
	UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant that no longer sells any pizza
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context, name string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	query := s.db.WithContext(ctx).Order("id")
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where(nameContains, containsPattern(name))
	}
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) GetPizzasByRestaurant(ctx context.Context, id uint) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Restaurant{}, id).Error; err != nil {
			return err
		}
		return tx.Distinct("pizzas.*").
			Joins("JOIN restaurant_pizzas ON restaurant_pizzas.pizza_id = pizzas.id").
			Where("restaurant_pizzas.restaurant_id = ?", id).
			Order("pizzas.id").
			Find(&pizzas).Error
	})
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	if err := requireValue(strings.TrimSpace(restaurant.Name) == "", "restaurants", "name"); err != nil {
		return models.Restaurant{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Pizzas").Create(&restaurant).Error
	})
	if err != nil {
		return models.Restaurant{}, translateStoreError(err, "restaurants")
	}

	log.WithFields(logrus.Fields{"restaurant_id": restaurant.ID, "name": restaurant.Name}).Info("Restaurant created")
	return restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if err := requireValue(strings.TrimSpace(restaurant.Name) == "", "restaurants", "name"); err != nil {
		return models.Restaurant{}, err
	}

	var updated models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, restaurant.ID).Error; err != nil {
			return err
		}
		updated.Name = restaurant.Name
		updated.Address = restaurant.Address
		return tx.Model(&updated).Select("name", "address").Updates(&updated).Error
	})
	if err != nil {
		return models.Restaurant{}, translateStoreError(err, "restaurants")
	}
	return updated, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Restaurant{}, id).Error; err != nil {
			return err
		}
		if err := restrictDelete(tx, "restaurants", "restaurant_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.Restaurant{}, id).Error
	})
	if err != nil {
		return translateDeleteError(err, "restaurants", "restaurant_id")
	}

	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	return nil
}
