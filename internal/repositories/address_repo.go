package repositories

import (
	"minicrm/internal/models"
)

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	GetAll() ([]models.Address, error)
	GetByID(id string) (*models.Address, error)
	GetByCustomer(customerID string) ([]models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id string) error
	DeleteByCustomer(customerID string) error
}
