package repositories

import (
	"errors"
	"fmt"

	"minicrm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetAll retrieves all addresses from the database.
func (r *GORMAddressRepository) GetAll() ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all addresses: %w", err)
	}
	return addresses, nil
}

// GetByID retrieves a single address by its ID from the database.
func (r *GORMAddressRepository) GetByID(id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "Address", ID: id}
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// GetByCustomer retrieves all addresses belonging to a customer.
func (r *GORMAddressRepository) GetByCustomer(customerID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("customer_id = ?", customerID).Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses for customer %s: %w", customerID, err)
	}
	return addresses, nil
}

// Create creates a new address in the database.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update updates an existing address in the database.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Address", ID: address.ID}
	}
	return nil
}

// Delete deletes an address by its ID from the database.
func (r *GORMAddressRepository) Delete(id string) error {
	res := r.db.Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Address", ID: id}
	}
	return nil
}

// DeleteByCustomer deletes every address owned by a customer. Deleting zero
// rows is not an error; a customer may have no addresses.
func (r *GORMAddressRepository) DeleteByCustomer(customerID string) error {
	if err := r.db.Delete(&models.Address{}, "customer_id = ?", customerID).Error; err != nil {
		return fmt.Errorf("failed to delete addresses for customer %s: %w", customerID, err)
	}
	return nil
}
