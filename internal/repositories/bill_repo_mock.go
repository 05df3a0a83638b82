package repositories

import (
	"fmt"
	"sync"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockBillRepository is an in-memory implementation of BillRepository.
type MockBillRepository struct {
	bills map[string]models.Bill // keyed by order ID
	mu    sync.RWMutex
}

// NewMockBillRepository creates a new instance of MockBillRepository.
func NewMockBillRepository() *MockBillRepository {
	return &MockBillRepository{
		bills: make(map[string]models.Bill),
	}
}

// Create stores a new bill.
func (r *MockBillRepository) Create(_ *gorm.DB, bill *models.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	r.bills[bill.OrderID] = *bill
	return nil
}

// GetByOrderID returns the bill generated for an order.
func (r *MockBillRepository) GetByOrderID(_ *gorm.DB, orderID string) (*models.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bill, ok := r.bills[orderID]
	if !ok {
		return nil, fmt.Errorf("bill for order %s: %w", orderID, gorm.ErrRecordNotFound)
	}
	return &bill, nil
}

// Count returns the number of stored bills.
func (r *MockBillRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bills)
}
