package services

import (
	"minicrm/internal/models"
	"minicrm/internal/repositories"
)

// CustomerRequest is the request body for creating or updating a customer.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
	tx   repositories.TxManager
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository, tx repositories.TxManager) *CustomerService {
	return &CustomerService{
		repo: repo,
		tx:   tx,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by their ID.
func (s *CustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// CreateCustomer persists a new customer, assigning identity and creation
// timestamp, and returns the created record.
func (s *CustomerService) CreateCustomer(req CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer overwrites the mutable fields of an existing customer.
func (s *CustomerService) UpdateCustomer(id string, req CustomerRequest) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer physically removes a customer and their addresses in one
// transaction. Deletion is refused while any order references the customer.
func (s *CustomerService) DeleteCustomer(id string) error {
	return s.tx.InTransaction(func(r repositories.TxRepos) error {
		if _, err := r.Customers.GetByID(id); err != nil {
			return err
		}

		orderCount, err := r.Orders.CountByCustomer(id)
		if err != nil {
			return err
		}
		if orderCount > 0 {
			return &models.DomainError{
				Message: "Cannot delete customer with existing orders. Please cancel or delete the orders first.",
			}
		}

		if err := r.Addresses.DeleteByCustomer(id); err != nil {
			return err
		}
		return r.Customers.Delete(id)
	})
}
