package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateRestaurant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Dominos"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Nil(t, created.Address)

	withAddress, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Pizza Hut", Address: strPtr("123 Main St")})
	require.NoError(t, err)
	assert.Equal(t, uint(2), withAddress.ID)
	assert.Equal(t, "123 Main St", *withAddress.Address)
}

func TestCreateRestaurantWithoutName(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurants.CreateRestaurant(context.Background(), models.Restaurant{Address: strPtr("somewhere")})
	violation := requireViolation(t, err, models.ConstraintNotNull)
	assert.Equal(t, "restaurants", violation.Table)
	assert.Equal(t, "name", violation.Column)

	var count int64
	f.db.Model(&models.Restaurant{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetAllRestaurants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Dominos", "Pizza Hut", "Kiki's Pizza"} {
		_, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: name})
		require.NoError(t, err)
	}

	all, err := f.restaurants.GetAllRestaurants(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := f.restaurants.GetAllRestaurants(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Pizza Hut", filtered[0].Name)
	assert.Equal(t, "Kiki's Pizza", filtered[1].Name)
}

func TestGetAllRestaurantsMatchesWildcardsLiterally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Dominos", "100% Pizza", "Slice_Co"} {
		_, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: name})
		require.NoError(t, err)
	}

	testCases := []struct {
		filter   string
		expected []string
	}{
		{filter: "%", expected: []string{"100% Pizza"}},
		{filter: "_", expected: []string{"Slice_Co"}},
		{filter: `\`, expected: nil},
	}

	for _, tt := range testCases {
		t.Run(tt.filter, func(t *testing.T) {
			found, err := f.restaurants.GetAllRestaurants(ctx, tt.filter)
			require.NoError(t, err)
			var names []string
			for _, r := range found {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurants.GetRestaurantByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateRestaurant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Dominos", Address: strPtr("1 Old Rd")})
	require.NoError(t, err)

	updated, err := f.restaurants.UpdateRestaurant(ctx, models.Restaurant{ID: created.ID, Name: "Domino's"})
	require.NoError(t, err)
	assert.Equal(t, "Domino's", updated.Name)
	assert.Nil(t, updated.Address, "a missing address clears the column")

	stored, err := f.restaurants.GetRestaurantByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Domino's", stored.Name)
	assert.Nil(t, stored.Address)

	_, err = f.restaurants.UpdateRestaurant(ctx, models.Restaurant{ID: created.ID})
	requireViolation(t, err, models.ConstraintNotNull)

	_, err = f.restaurants.UpdateRestaurant(ctx, models.Restaurant{ID: 99, Name: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetPizzasByRestaurant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Dominos"})
	require.NoError(t, err)
	margherita, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Margherita"})
	require.NoError(t, err)
	_, err = f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Pepperoni"})
	require.NoError(t, err)

	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 10, RestaurantID: restaurant.ID, PizzaID: margherita.ID})
	require.NoError(t, err)
	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 12, RestaurantID: restaurant.ID, PizzaID: margherita.ID})
	require.NoError(t, err)

	pizzas, err := f.restaurants.GetPizzasByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Margherita", pizzas[0].Name)

	_, err = f.restaurants.GetPizzasByRestaurant(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRestaurantIsRestricted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Dominos"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Margherita"})
	require.NoError(t, err)
	item, err := f.restaurantPizzas.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 10, RestaurantID: restaurant.ID, PizzaID: pizza.ID})
	require.NoError(t, err)

	err = f.restaurants.DeleteRestaurant(ctx, restaurant.ID)
	violation := requireViolation(t, err, models.ConstraintRestrict)
	assert.Equal(t, "restaurant_id", violation.Column)
	assert.Equal(t, "restaurants", violation.References)

	_, err = f.restaurants.GetRestaurantByID(ctx, restaurant.ID)
	require.NoError(t, err, "restaurant must survive a restricted delete")
	assert.Equal(t, int64(1), f.countRestaurantPizzas(t))

	require.NoError(t, f.restaurantPizzas.DeleteRestaurantPizza(ctx, item.ID))
	require.NoError(t, f.restaurants.DeleteRestaurant(ctx, restaurant.ID))

	_, err = f.restaurants.GetRestaurantByID(ctx, restaurant.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = f.pizzas.GetPizzaByID(ctx, pizza.ID)
	assert.NoError(t, err, "pizza is not owned by the restaurant")
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.restaurants.DeleteRestaurant(context.Background(), 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
