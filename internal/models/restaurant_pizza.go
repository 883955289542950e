package models

import "fmt"

// RestaurantPizza links a Restaurant with a Pizza it sells, at a given price.
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `json:"-"`
	Pizza      Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the invariants that do not need the store.
func (rp *RestaurantPizza) Validate() error {
	return ValidatePrice(rp.Price)
}

func (rp RestaurantPizza) String() string {
	return fmt.Sprintf("<RestaurantPizza $%d>", rp.Price)
}
