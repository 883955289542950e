package models

import "fmt"

// Restaurant is a place that sells pizzas.
type Restaurant struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Address *string `json:"address"`

	// Pizzas lists the menu entries of the restaurant.
	// Deleting a restaurant that still has entries is restricted.
	Pizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:fk_restaurant_pizzas_restaurant_id_restaurants,OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

func (r Restaurant) String() string {
	return fmt.Sprintf("<Restaurant %s>", r.Name)
}
