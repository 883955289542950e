package models

import "fmt"

// Pizza is a pizza recipe that restaurants can put on their menu.
type Pizza struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Ingredients *string `json:"ingredients"`

	// RestaurantPizzas lists the menu entries offering this pizza.
	// Deleting a pizza that still has entries is restricted.
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:fk_restaurant_pizzas_pizza_id_pizzas,OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

func (p Pizza) String() string {
	if p.Ingredients == nil {
		return fmt.Sprintf("<Pizza %s>", p.Name)
	}
	return fmt.Sprintf("<Pizza %s, %s>", p.Name, *p.Ingredients)
}
