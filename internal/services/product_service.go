package services

import (
	"storehub/internal/models"
	"storehub/internal/repositories"

	"gorm.io/gorm"
)

// ProductService handles business logic related to products. Every method is
// scoped to the tenant database passed by the caller.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products of the tenant.
func (s *ProductService) GetAllProducts(db *gorm.DB) ([]models.Product, error) {
	return s.repo.GetAll(db)
}

// GetActiveProducts retrieves the products visible on the storefront.
func (s *ProductService) GetActiveProducts(db *gorm.DB) ([]models.Product, error) {
	return s.repo.GetActive(db)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(db *gorm.DB, id string) (*models.Product, error) {
	return s.repo.GetByID(db, id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(db *gorm.DB, product *models.Product) error {
	return s.repo.Create(db, product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(db *gorm.DB, product *models.Product) error {
	return s.repo.Update(db, product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(db *gorm.DB, id string) error {
	return s.repo.Delete(db, id)
}
