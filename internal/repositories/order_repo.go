package repositories

import (
	"minicrm/internal/models"
)

// OrderRepository defines the interface for order data access. GetByID and
// GetAll load orders together with their items.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	CountByCustomer(customerID string) (int64, error)
	CountItemsByProduct(productID string) (int64, error)
}
