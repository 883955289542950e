package services

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the services package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

// translateStoreError wraps constraint errors raised by the store in a
// *models.ConstraintViolation. Other errors are returned unchanged.
func translateStoreError(err error, table string) error {
	if err == nil {
		return nil
	}

	var violation *models.ConstraintViolation
	var validation *models.ValidationError
	if errors.As(err, &violation) || errors.As(err, &validation) || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// Drivers without a translator only give us the message
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(msg, "foreign key constraint"):
		return &models.ConstraintViolation{Kind: models.ConstraintForeignKey, Table: table, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(msg, "unique constraint"):
		return &models.ConstraintViolation{Kind: models.ConstraintUnique, Table: table, Err: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &models.ConstraintViolation{Kind: models.ConstraintCheck, Table: table, Err: err}
	case strings.Contains(msg, "not null constraint"), strings.Contains(msg, "not-null constraint"):
		return &models.ConstraintViolation{Kind: models.ConstraintNotNull, Table: table, Err: err}
	}
	return err
}

// translateDeleteError translates errors from deleting a row of table. A
// foreign key failure there means restaurant_pizzas.column still references
// the row, so it is reported as a restrict violation.
func translateDeleteError(err error, table, column string) error {
	err = translateStoreError(err, table)
	var violation *models.ConstraintViolation
	if errors.As(err, &violation) && violation.Kind == models.ConstraintForeignKey {
		return &models.ConstraintViolation{
			Kind:       models.ConstraintRestrict,
			Table:      "restaurant_pizzas",
			Column:     column,
			References: table,
			Err:        violation.Err,
		}
	}
	return err
}

// requireValue returns a not-null violation for table.column when missing is true
func requireValue(missing bool, table, column string) error {
	if missing {
		return &models.ConstraintViolation{Kind: models.ConstraintNotNull, Table: table, Column: column}
	}
	return nil
}

// ensureExists returns a foreign key violation on restaurant_pizzas.column
// when no row of model has the given id.
func ensureExists(tx *gorm.DB, model interface{}, table, column string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &models.ConstraintViolation{
			Kind:       models.ConstraintForeignKey,
			Table:      "restaurant_pizzas",
			Column:     column,
			References: table,
		}
	}
	return nil
}

// restrictDelete refuses to delete a parent row still referenced by restaurant_pizzas.column
func restrictDelete(tx *gorm.DB, table, column string, id uint) error {
	var count int64
	if err := tx.Model(&models.RestaurantPizza{}).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &models.ConstraintViolation{
			Kind:       models.ConstraintRestrict,
			Table:      "restaurant_pizzas",
			Column:     column,
			References: table,
		}
	}
	return nil
}
