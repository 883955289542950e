package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database.SetLevel(logrus.WarnLevel)
	SetLevel(logrus.WarnLevel)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func strPtr(s string) *string {
	return &s
}

func requireViolation(t *testing.T, err error, kind models.ConstraintKind) *models.ConstraintViolation {
	t.Helper()
	require.Error(t, err)
	var violation *models.ConstraintViolation
	require.True(t, errors.As(err, &violation), "expected ConstraintViolation, got %T: %v", err, err)
	assert.Equal(t, kind, violation.Kind)
	return violation
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T: %v", err, err)
	assert.Equal(t, "Price must be between 1 and 30", validationErr.Error())
}

type fixture struct {
	restaurants      RestaurantService
	pizzas           PizzaService
	restaurantPizzas RestaurantPizzaService
	db               *gorm.DB
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	return fixture{
		restaurants:      NewRestaurantService(db),
		pizzas:           NewPizzaService(db),
		restaurantPizzas: NewRestaurantPizzaService(db),
		db:               db,
	}
}

func (f fixture) countRestaurantPizzas(t *testing.T) int64 {
	var count int64
	require.NoError(t, f.db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}
