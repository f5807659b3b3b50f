package handlers

import (
	"errors"
	"fmt"

	"minicrm/internal/models"
	"minicrm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
	orderRoutes.Post("/:id/complete", h.HandleCompleteOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order. An unknown customer or product is a
// request defect here rather than a missing resource, so lookup failures map
// to 400 alongside stock violations.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	order, err := h.service.CreateOrder(req)
	if err != nil {
		var notFound *models.NotFoundError
		var domain *models.DomainError
		if errors.As(err, &notFound) || errors.As(err, &domain) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}

	c.Location(fmt.Sprintf("/orders/%s", order.ID))
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleCancelOrder cancels an order, restoring the stock it deducted. A
// missing or already-cancelled order is a negative result, reported as 404.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	cancelled, err := h.service.CancelOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	if !cancelled {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order with ID %s not found", id),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCompleteOrder marks an order as completed. Completion has no stock
// side effects; completing a cancelled order is rejected as a domain
// violation.
func (h *OrderHandler) HandleCompleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	completed, err := h.service.CompleteOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	if !completed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order with ID %s not found", id),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
