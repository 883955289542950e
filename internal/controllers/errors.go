package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the controllers package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

// respondWithError maps service errors to API error responses
func respondWithError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var violation *models.ConstraintViolation

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrValidationFailed, validationErr.Message,
			map[string]interface{}{"field": validationErr.Field}))

	case errors.As(err, &violation):
		details := map[string]interface{}{"constraint": string(violation.Kind)}
		if violation.Table != "" {
			details["table"] = violation.Table
		}
		if violation.Column != "" {
			details["column"] = violation.Column
		}
		switch violation.Kind {
		case models.ConstraintNotNull:
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrConstraintViolation, violation.Error(), details))
		case models.ConstraintRestrict:
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrDeleteRestricted, violation.Error(), details))
		default:
			ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConstraintViolation, violation.Error(), details))
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Resource not found"))

	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

// respondWithBindError reports a request body that could not be bound
func respondWithBindError(ctx *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]interface{}, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body", details))
		return
	}
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
}

// parseID reads the ":id" path parameter, responding with 400 when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ID format"))
		return 0, false
	}
	return uint(id), true
}
