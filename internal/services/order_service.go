package services

import (
	"errors"
	"fmt"
	"time"

	"minicrm/internal/models"
	"minicrm/internal/repositories"

	log "github.com/sirupsen/logrus"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables event publication.
type EventPublisher interface {
	PublishOrderEvent(event string, payload map[string]interface{}) error
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderCreateRequest is the request body for creating an order.
type OrderCreateRequest struct {
	CustomerID string           `json:"customer_id" validate:"required"`
	AddressID  *string          `json:"address_id,omitempty"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse is one order line with its product name resolved.
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// OrderResponse is a fully resolved order as returned by the API.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	AddressID    *string             `json:"address_id,omitempty"`
	Status       models.OrderStatus  `json:"status"`
	TotalAmount  float64             `json:"total_amount"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderService handles the order lifecycle: creation with stock deduction,
// cancellation with stock restoration, and completion. All mutations run
// inside a single database transaction.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
	tx           repositories.TxManager
	events       EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
	tx repositories.TxManager,
	events EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
		events:       events,
	}
}

// GetAllOrders retrieves all orders with customer and product names resolved.
func (s *OrderService) GetAllOrders() ([]OrderResponse, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp := buildOrderResponse(&order, customerNames[order.CustomerID], productNames)
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetOrderByID retrieves a single order with names resolved.
func (s *OrderService) GetOrderByID(id string) (*OrderResponse, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.resolveOrder(order)
}

// CreateOrder validates the customer and every requested line, deducts stock,
// snapshots unit prices, and persists the order with its items as one atomic
// unit. Items are processed in the order supplied; any failure rolls back all
// stock deductions applied so far.
func (s *OrderService) CreateOrder(req OrderCreateRequest) (*OrderResponse, error) {
	var created *models.Order

	err := s.tx.InTransaction(func(r repositories.TxRepos) error {
		if _, err := r.Customers.GetByID(req.CustomerID); err != nil {
			return err
		}
		if req.AddressID != nil {
			if _, err := r.Addresses.GetByID(*req.AddressID); err != nil {
				return err
			}
		}

		order := &models.Order{
			CustomerID: req.CustomerID,
			AddressID:  req.AddressID,
			Status:     models.OrderStatusNew,
		}

		var totalAmount float64
		for _, item := range req.Items {
			product, err := r.Products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product.CurrentStock < item.Quantity {
				return &models.DomainError{Message: fmt.Sprintf(
					"Insufficient stock for product %s (requested: %d, available: %d)",
					product.Name, item.Quantity, product.CurrentStock,
				)}
			}

			product.CurrentStock -= item.Quantity
			if err := r.Products.Update(product); err != nil {
				return err
			}

			// Snapshot the price at this moment; later product price
			// changes never alter existing order lines.
			lineTotal := product.UnitPrice * float64(item.Quantity)
			totalAmount += lineTotal
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: product.UnitPrice,
				LineTotal: lineTotal,
			})
		}

		order.TotalAmount = totalAmount
		if err := r.Orders.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": created.ID,
		"customer": created.CustomerID,
		"total":    created.TotalAmount,
	}).Info("order created")

	s.publishEvent("order.created", created)

	return s.resolveOrder(created)
}

// CancelOrder transitions an order to Cancelled and restores the stock it
// deducted, as one atomic unit. It returns false without error when the order
// does not exist or is already cancelled; neither is treated as a failure and
// no state changes in either case. The order's total amount is left untouched
// as a historical record.
func (s *OrderService) CancelOrder(id string) (bool, error) {
	var cancelled *models.Order

	err := s.tx.InTransaction(func(r repositories.TxRepos) error {
		order, err := r.Orders.GetByID(id)
		if err != nil {
			var notFound *models.NotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return err
		}
		if order.Status == models.OrderStatusCancelled {
			return nil
		}

		for _, item := range order.Items {
			product, err := r.Products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			product.CurrentStock += item.Quantity
			if err := r.Products.Update(product); err != nil {
				return err
			}
		}

		if err := r.Orders.UpdateStatus(id, models.OrderStatusCancelled); err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return false, err
	}
	if cancelled == nil {
		return false, nil
	}

	log.WithField("order_id", id).Info("order cancelled")
	s.publishEvent("order.cancelled", cancelled)
	return true, nil
}

// CompleteOrder transitions a New order to Completed. Completion has no stock
// side effects. It returns false without error when the order does not exist
// or is already completed; completing a cancelled order is a domain violation.
func (s *OrderService) CompleteOrder(id string) (bool, error) {
	var completed *models.Order

	err := s.tx.InTransaction(func(r repositories.TxRepos) error {
		order, err := r.Orders.GetByID(id)
		if err != nil {
			var notFound *models.NotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return err
		}
		switch order.Status {
		case models.OrderStatusCompleted:
			return nil
		case models.OrderStatusCancelled:
			return &models.DomainError{Message: fmt.Sprintf("Cannot complete cancelled order %s", id)}
		}

		if err := r.Orders.UpdateStatus(id, models.OrderStatusCompleted); err != nil {
			return err
		}
		order.Status = models.OrderStatusCompleted
		completed = order
		return nil
	})
	if err != nil {
		return false, err
	}
	if completed == nil {
		return false, nil
	}

	log.WithField("order_id", id).Info("order completed")
	s.publishEvent("order.completed", completed)
	return true, nil
}

// resolveOrder loads the customer and product names referenced by an order.
// Referential guards on customer and product deletion keep these lookups from
// dangling.
func (s *OrderService) resolveOrder(order *models.Order) (*OrderResponse, error) {
	customer, err := s.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}

	productNames := make(map[string]string, len(order.Items))
	for _, item := range order.Items {
		if _, ok := productNames[item.ProductID]; ok {
			continue
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		productNames[item.ProductID] = product.Name
	}

	return buildOrderResponse(order, customer.Name, productNames), nil
}

func buildOrderResponse(order *models.Order, customerName string, productNames map[string]string) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: productNames[item.ProductID],
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return &OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: customerName,
		AddressID:    order.AddressID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		CreatedAt:    order.CreatedAt,
		Items:        items,
	}
}

func (s *OrderService) publishEvent(event string, order *models.Order) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"order_id": order.ID,
		"customer": order.CustomerID,
		"status":   string(order.Status),
		"total":    order.TotalAmount,
	}
	if err := s.events.PublishOrderEvent(event, payload); err != nil {
		log.WithError(err).WithField("event", event).Warn("failed to publish order event")
	}
}
