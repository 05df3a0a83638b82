package repositories

import (
	"sync"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockLedgerRepository is an in-memory implementation of LedgerRepository.
type MockLedgerRepository struct {
	entries []models.LedgerEntry
	mu      sync.RWMutex
}

// NewMockLedgerRepository creates a new instance of MockLedgerRepository.
func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

// Append stores a new ledger entry.
func (r *MockLedgerRepository) Append(_ *gorm.DB, entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// GetAll returns every stored entry.
func (r *MockLedgerRepository) GetAll(_ *gorm.DB) ([]models.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.LedgerEntry(nil), r.entries...), nil
}

// GetByType returns the entries of one type.
func (r *MockLedgerRepository) GetByType(_ *gorm.DB, entryType string) ([]models.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []models.LedgerEntry
	for _, entry := range r.entries {
		if entry.Type == entryType {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}
