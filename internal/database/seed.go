package database

import (
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

// Seed inserts sample restaurants, pizzas and menu entries.
// It does nothing when the restaurants table already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Dominos"},
			{Name: "Pizza Hut", Address: strPtr("123 Main St")},
			{Name: "Kiki's Pizza", Address: strPtr("456 Pizza Ave")},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := []models.Pizza{
			{Name: "Margherita", Ingredients: strPtr("cheese, tomato")},
			{Name: "Pepperoni", Ingredients: strPtr("Dough, Tomato Sauce, Cheese, Pepperoni")},
			{Name: "Emma", Ingredients: strPtr("Dough, Tomato Sauce, Cheese")},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		entries := []models.RestaurantPizza{
			{Price: 10, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 12, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 1, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		for i := range entries {
			if err := entries[i].Validate(); err != nil {
				return err
			}
		}
		if err := tx.Create(&entries).Error; err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(restaurants),
			"pizzas":            len(pizzas),
			"restaurant_pizzas": len(entries),
		}).Info("Database seeded successfully")
		return nil
	})
}
