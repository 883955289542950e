package models

// The views below are the serialization allowlists of each entity.
// Relationship collections are never part of a view, so nesting stops at depth 1.

// RestaurantView exposes exactly id, name and address.
type RestaurantView struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// PizzaView exposes exactly id, name and ingredients.
type PizzaView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Ingredients *string `json:"ingredients"`
}

// RestaurantPizzaView exposes exactly id, price, restaurant and pizza.
type RestaurantPizzaView struct {
	ID         uint           `json:"id"`
	Price      int            `json:"price"`
	Restaurant RestaurantView `json:"restaurant"`
	Pizza      PizzaView      `json:"pizza"`
}

func NewRestaurantView(r Restaurant) RestaurantView {
	return RestaurantView{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaView(p Pizza) PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantPizzaView expects Restaurant and Pizza to be loaded.
func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:         rp.ID,
		Price:      rp.Price,
		Restaurant: NewRestaurantView(rp.Restaurant),
		Pizza:      NewPizzaView(rp.Pizza),
	}
}

func NewRestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, NewRestaurantView(r))
	}
	return views
}

func NewPizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, NewPizzaView(p))
	}
	return views
}

func NewRestaurantPizzaViews(items []RestaurantPizza) []RestaurantPizzaView {
	views := make([]RestaurantPizzaView, 0, len(items))
	for _, rp := range items {
		views = append(views, NewRestaurantPizzaView(rp))
	}
	return views
}
