package handlers

import (
	"errors"
	"fmt"

	"minicrm/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// respondError maps service errors to the uniform status-code scheme:
// missing entity -> 404, domain-rule violation -> 400, anything else -> 500.
func respondError(c *fiber.Ctx, err error) error {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	}
	var domain *models.DomainError
	if errors.As(err, &domain) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": domain.Error(),
		})
	}
	log.WithError(err).Error("unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// respondValidationError renders validator failures field by field.
func respondValidationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
