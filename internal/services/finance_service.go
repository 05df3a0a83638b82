package services

import (
	"fmt"
	"time"

	"storehub/internal/models"
	"storehub/internal/repositories"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// FinanceService manages the tenant's manual income and expense ledger.
// Checkout appends its own sale entries directly; this service only covers
// entries recorded by hand.
type FinanceService struct {
	ledgerRepo repositories.LedgerRepository
	validate   *validator.Validate
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(ledgerRepo repositories.LedgerRepository) *FinanceService {
	return &FinanceService{
		ledgerRepo: ledgerRepo,
		validate:   validator.New(),
	}
}

// AddEntry records a manual income or expense entry.
func (s *FinanceService) AddEntry(db *gorm.DB, entry *models.LedgerEntry) error {
	if err := s.validate.Struct(entry); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !entry.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	entry.Source = models.LedgerSourceManual
	if entry.EntryDate.IsZero() {
		entry.EntryDate = time.Now()
	}

	return s.ledgerRepo.Append(db, entry)
}

// GetEntries retrieves ledger entries, optionally filtered by type.
func (s *FinanceService) GetEntries(db *gorm.DB, entryType string) ([]models.LedgerEntry, error) {
	switch entryType {
	case "":
		return s.ledgerRepo.GetAll(db)
	case models.LedgerIncome, models.LedgerExpense:
		return s.ledgerRepo.GetByType(db, entryType)
	default:
		return nil, fmt.Errorf("%w: unknown ledger entry type %q", ErrInvalidRequest, entryType)
	}
}
