package models

import "fmt"

// Price bounds of a RestaurantPizza, inclusive.
const (
	MinPrice = 1
	MaxPrice = 30
)

// ValidatePrice returns a *ValidationError when price is outside [MinPrice, MaxPrice].
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return NewValidationError("price", fmt.Sprintf("Price must be between %d and %d", MinPrice, MaxPrice))
	}
	return nil
}
