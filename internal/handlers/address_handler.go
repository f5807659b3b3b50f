package handlers

import (
	"errors"
	"fmt"

	"minicrm/internal/models"
	"minicrm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for customer addresses.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleGetAddresses)
	addressRoutes.Get("/customer/:customerId", h.HandleGetAddressesByCustomer)
	addressRoutes.Get("/:id", h.HandleGetAddressByID)
	addressRoutes.Post("/", h.HandleCreateAddress)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)
}

// HandleGetAddresses retrieves all addresses.
func (h *AddressHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.GetAllAddresses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(addresses)
}

// HandleGetAddressByID retrieves a single address by its ID.
func (h *AddressHandler) HandleGetAddressByID(c *fiber.Ctx) error {
	address, err := h.service.GetAddressByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}

// HandleGetAddressesByCustomer retrieves all addresses owned by a customer.
// An unknown customer yields an empty list, not an error.
func (h *AddressHandler) HandleGetAddressesByCustomer(c *fiber.Ctx) error {
	addresses, err := h.service.GetAddressesByCustomer(c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(addresses)
}

// HandleCreateAddress creates a new address. A reference to a nonexistent
// customer is a request defect, mapped to 400.
func (h *AddressHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var req services.AddressCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	address, err := h.service.CreateAddress(req)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}

	c.Location(fmt.Sprintf("/addresses/%s", address.ID))
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleUpdateAddress updates an existing address.
func (h *AddressHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var req services.AddressUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	address, err := h.service.UpdateAddress(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}

// HandleDeleteAddress deletes an address.
func (h *AddressHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	if err := h.service.DeleteAddress(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
