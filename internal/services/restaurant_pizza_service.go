package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the pizzas a restaurant sells and their prices.
// Every returned RestaurantPizza has its Restaurant and Pizza loaded.
type RestaurantPizzaService interface {
	GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error)
	GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error)
	// CreateRestaurantPizza validates the price, then checks both parents exist before inserting
	CreateRestaurantPizza(ctx context.Context, item models.RestaurantPizza) (models.RestaurantPizza, error)
	// UpdatePrice validates and stores a new price
	UpdatePrice(ctx context.Context, id uint, price int) (models.RestaurantPizza, error)
	DeleteRestaurantPizza(ctx context.Context, id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func withParents(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Restaurant").Preload("Pizza")
}

func (s *restaurantPizzaService) GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	var items []models.RestaurantPizza
	if err := withParents(s.db.WithContext(ctx)).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var item models.RestaurantPizza
	if err := withParents(s.db.WithContext(ctx)).First(&item, id).Error; err != nil {
		return models.RestaurantPizza{}, err
	}
	return item, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, item models.RestaurantPizza) (models.RestaurantPizza, error) {
	if err := item.Validate(); err != nil {
		return models.RestaurantPizza{}, err
	}
	if err := requireValue(item.RestaurantID == 0, "restaurant_pizzas", "restaurant_id"); err != nil {
		return models.RestaurantPizza{}, err
	}
	if err := requireValue(item.PizzaID == 0, "restaurant_pizzas", "pizza_id"); err != nil {
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Restaurant{}, "restaurants", "restaurant_id", item.RestaurantID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Pizza{}, "pizzas", "pizza_id", item.PizzaID); err != nil {
			return err
		}

		row := models.RestaurantPizza{Price: item.Price, RestaurantID: item.RestaurantID, PizzaID: item.PizzaID}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		return withParents(tx).First(&created, row.ID).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, translateStoreError(err, "restaurant_pizzas")
	}

	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
		"price":               created.Price,
	}).Info("Restaurant pizza created")
	return created, nil
}

func (s *restaurantPizzaService) UpdatePrice(ctx context.Context, id uint, price int) (models.RestaurantPizza, error) {
	if err := models.ValidatePrice(price); err != nil {
		return models.RestaurantPizza{}, err
	}

	var updated models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&updated).Omit(clause.Associations).Update("price", price).Error; err != nil {
			return err
		}
		return withParents(tx).First(&updated, id).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, translateStoreError(err, "restaurant_pizzas")
	}
	return updated, nil
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RestaurantPizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	log.WithField("restaurant_pizza_id", id).Info("Restaurant pizza deleted")
	return nil
}
