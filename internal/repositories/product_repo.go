package repositories

import (
	"errors"

	"storehub/internal/models"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by DecrementStock when the guarded update
// matches no row, i.e. the remaining stock is smaller than the amount.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the interface for product data access. Every
// method takes the database handle explicitly because each call is scoped to
// one tenant's database, or to an open transaction on it.
type ProductRepository interface {
	GetAll(db *gorm.DB) ([]models.Product, error)
	GetActive(db *gorm.DB) ([]models.Product, error)
	GetByID(db *gorm.DB, id string) (*models.Product, error)
	// GetByIDForUpdate reads a product holding an exclusive row lock for the
	// rest of the transaction. Must be called inside a transaction.
	GetByIDForUpdate(tx *gorm.DB, id string) (*models.Product, error)
	// DecrementStock subtracts amount from the product's stock, guarded so
	// the quantity can never go below zero.
	DecrementStock(tx *gorm.DB, id string, amount int) error
	Create(db *gorm.DB, product *models.Product) error
	Update(db *gorm.DB, product *models.Product) error
	Delete(db *gorm.DB, id string) error
}
