package repositories

import (
	"errors"
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct{}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository() *GORMProductRepository {
	return &GORMProductRepository{}
}

// GetAll retrieves all products from the tenant database.
func (r *GORMProductRepository) GetAll(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetActive retrieves only the products visible on the storefront.
func (r *GORMProductRepository) GetActive(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Where("status = ?", models.ProductActive).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByIDForUpdate reads a product under an exclusive row lock held until the
// enclosing transaction resolves, so concurrent checkouts for the same
// product serialize at this read. SQLite has no FOR UPDATE; its single-writer
// lock already serializes transactions, so the clause is only added on
// Postgres. Not-found is returned unwrapped so callers can errors.Is it.
func (r *GORMProductRepository) GetByIDForUpdate(tx *gorm.DB, id string) (*models.Product, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var product models.Product
	if err := query.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DecrementStock atomically subtracts amount from the product's stock. The
// quantity guard in the WHERE clause keeps stock from ever going negative
// even if a caller skipped the locked stock check.
func (r *GORMProductRepository) DecrementStock(tx *gorm.DB, id string, amount int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// Create creates a new product in the tenant database.
func (r *GORMProductRepository) Create(db *gorm.DB, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	if err := db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product. Select("*") replaces every field,
// zero values included; unlike Save there is no insert fallback, so a
// missing row reports not found instead of being created.
func (r *GORMProductRepository) Update(db *gorm.DB, product *models.Product) error {
	res := db.Model(product).Select("*").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update product with ID %s: %w", product.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete product with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
