package repositories

import (
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerRepository defines the interface for the append-only financial
// ledger. Entries are never updated or deleted.
type LedgerRepository interface {
	Append(tx *gorm.DB, entry *models.LedgerEntry) error
	GetAll(db *gorm.DB) ([]models.LedgerEntry, error)
	GetByType(db *gorm.DB, entryType string) ([]models.LedgerEntry, error)
}

// GORMLedgerRepository is a GORM implementation of LedgerRepository.
type GORMLedgerRepository struct{}

// NewGORMLedgerRepository creates a new instance of GORMLedgerRepository.
func NewGORMLedgerRepository() *GORMLedgerRepository {
	return &GORMLedgerRepository{}
}

// Append inserts a new ledger entry.
func (r *GORMLedgerRepository) Append(tx *gorm.DB, entry *models.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

// GetAll retrieves every ledger entry, newest first.
func (r *GORMLedgerRepository) GetAll(db *gorm.DB) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := db.Order("entry_date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

// GetByType retrieves the ledger entries of one type, newest first.
func (r *GORMLedgerRepository) GetByType(db *gorm.DB, entryType string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := db.Where("type = ?", entryType).Order("entry_date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s ledger entries: %w", entryType, err)
	}
	return entries, nil
}
