package services

import (
	"minicrm/internal/models"
	"minicrm/internal/repositories"
)

// ProductRequest is the request body for creating or updating a product.
type ProductRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Sku          string  `json:"sku" validate:"required,max=50"`
	UnitPrice    float64 `json:"unit_price" validate:"required,gt=0"`
	CurrentStock int     `json:"current_stock" validate:"gte=0"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	tx   repositories.TxManager
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, tx repositories.TxManager) *ProductService {
	return &ProductService{
		repo: repo,
		tx:   tx,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and returns the created record.
func (s *ProductService) CreateProduct(req ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:         req.Name,
		Sku:          req.Sku,
		UnitPrice:    req.UnitPrice,
		CurrentStock: req.CurrentStock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites the mutable fields of an existing product.
func (s *ProductService) UpdateProduct(id string, req ProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Sku = req.Sku
	product.UnitPrice = req.UnitPrice
	product.CurrentStock = req.CurrentStock

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct physically removes a product. Deletion is refused once any
// order item references the product, as order lines keep a historical
// reference to it.
func (s *ProductService) DeleteProduct(id string) error {
	return s.tx.InTransaction(func(r repositories.TxRepos) error {
		if _, err := r.Products.GetByID(id); err != nil {
			return err
		}

		itemCount, err := r.Orders.CountItemsByProduct(id)
		if err != nil {
			return err
		}
		if itemCount > 0 {
			return &models.DomainError{
				Message: "Cannot delete product that has been ordered. Please cancel or delete the related orders first.",
			}
		}

		return r.Products.Delete(id)
	})
}
