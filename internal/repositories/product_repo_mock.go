package repositories

import (
	"fmt"
	"sync"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// The db argument is ignored; the mutex stands in for the row locks a real
// database would take.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(_ *gorm.DB) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetActive returns the products with an active status.
func (r *MockProductRepository) GetActive(_ *gorm.DB) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Status == models.ProductActive {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(_ *gorm.DB, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return &product, nil
}

// GetByIDForUpdate returns a product by its ID. Like the GORM version it
// reports not-found with gorm.ErrRecordNotFound.
func (r *MockProductRepository) GetByIDForUpdate(_ *gorm.DB, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &product, nil
}

// DecrementStock subtracts amount from the product's stock, refusing to go
// below zero.
func (r *MockProductRepository) DecrementStock(_ *gorm.DB, id string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.Quantity < amount {
		return ErrInsufficientStock
	}
	product.Quantity -= amount
	r.products[id] = product
	return nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ *gorm.DB, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(_ *gorm.DB, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("update product with ID %s: %w", product.ID, gorm.ErrRecordNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("delete product with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	delete(r.products, id)
	return nil
}
