package repositories

import (
	"errors"
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillRepository defines the interface for bill data access. Bills are
// created once, in the checkout transaction, and only read afterwards.
type BillRepository interface {
	Create(tx *gorm.DB, bill *models.Bill) error
	GetByOrderID(db *gorm.DB, orderID string) (*models.Bill, error)
}

// GORMBillRepository is a GORM implementation of BillRepository.
type GORMBillRepository struct{}

// NewGORMBillRepository creates a new instance of GORMBillRepository.
func NewGORMBillRepository() *GORMBillRepository {
	return &GORMBillRepository{}
}

// Create inserts the bill in the caller's transaction.
func (r *GORMBillRepository) Create(tx *gorm.DB, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if err := tx.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

// GetByOrderID retrieves the bill generated for an order.
func (r *GORMBillRepository) GetByOrderID(db *gorm.DB, orderID string) (*models.Bill, error) {
	var bill models.Bill
	if err := db.First(&bill, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bill for order %s: %w", orderID, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get bill for order %s: %w", orderID, err)
	}
	return &bill, nil
}
