package services

import (
	"minicrm/internal/models"
	"minicrm/internal/repositories"
)

// AddressCreateRequest is the request body for creating an address.
type AddressCreateRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Street     string `json:"street" validate:"required,max=200"`
	Suburb     string `json:"suburb" validate:"required,max=100"`
	Postcode   string `json:"postcode" validate:"required,max=20"`
	State      string `json:"state" validate:"required,max=50"`
}

// AddressUpdateRequest is the request body for updating an address. The
// owning customer cannot be changed.
type AddressUpdateRequest struct {
	Street   string `json:"street" validate:"required,max=200"`
	Suburb   string `json:"suburb" validate:"required,max=100"`
	Postcode string `json:"postcode" validate:"required,max=20"`
	State    string `json:"state" validate:"required,max=50"`
}

// AddressResponse is an address with its owning customer's name resolved.
type AddressResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Street       string `json:"street"`
	Suburb       string `json:"suburb"`
	Postcode     string `json:"postcode"`
	State        string `json:"state"`
}

// AddressService handles business logic related to customer addresses.
type AddressService struct {
	repo         repositories.AddressRepository
	customerRepo repositories.CustomerRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository, customerRepo repositories.CustomerRepository) *AddressService {
	return &AddressService{
		repo:         repo,
		customerRepo: customerRepo,
	}
}

// GetAllAddresses retrieves all addresses with customer names resolved.
func (s *AddressService) GetAllAddresses() ([]AddressResponse, error) {
	addresses, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.resolveAddresses(addresses)
}

// GetAddressByID retrieves a single address by its ID.
func (s *AddressService) GetAddressByID(id string) (*AddressResponse, error) {
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(address.CustomerID)
	if err != nil {
		return nil, err
	}
	return buildAddressResponse(address, customer.Name), nil
}

// GetAddressesByCustomer retrieves all addresses owned by a customer.
func (s *AddressService) GetAddressesByCustomer(customerID string) ([]AddressResponse, error) {
	addresses, err := s.repo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.resolveAddresses(addresses)
}

// CreateAddress persists a new address. The referenced customer must exist.
func (s *AddressService) CreateAddress(req AddressCreateRequest) (*AddressResponse, error) {
	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		CustomerID: req.CustomerID,
		Street:     req.Street,
		Suburb:     req.Suburb,
		Postcode:   req.Postcode,
		State:      req.State,
	}
	if err := s.repo.Create(address); err != nil {
		return nil, err
	}
	return buildAddressResponse(address, customer.Name), nil
}

// UpdateAddress overwrites the mutable fields of an existing address.
func (s *AddressService) UpdateAddress(id string, req AddressUpdateRequest) (*AddressResponse, error) {
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.Suburb = req.Suburb
	address.Postcode = req.Postcode
	address.State = req.State

	if err := s.repo.Update(address); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(address.CustomerID)
	if err != nil {
		return nil, err
	}
	return buildAddressResponse(address, customer.Name), nil
}

// DeleteAddress physically removes an address.
func (s *AddressService) DeleteAddress(id string) error {
	return s.repo.Delete(id)
}

func (s *AddressService) resolveAddresses(addresses []models.Address) ([]AddressResponse, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	responses := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *buildAddressResponse(&addresses[i], customerNames[addresses[i].CustomerID]))
	}
	return responses, nil
}

func buildAddressResponse(address *models.Address, customerName string) *AddressResponse {
	return &AddressResponse{
		ID:           address.ID,
		CustomerID:   address.CustomerID,
		CustomerName: customerName,
		Street:       address.Street,
		Suburb:       address.Suburb,
		Postcode:     address.Postcode,
		State:        address.State,
	}
}
