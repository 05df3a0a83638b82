package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry types and sources.
const (
	LedgerIncome  = "income"
	LedgerExpense = "expense"

	LedgerSourceSale   = "sale"
	LedgerSourceManual = "manual"
)

// LedgerEntry is an append-only financial record used for reporting. Entries
// are written as a side effect of billing (Source "sale") or entered manually
// (Source "manual") and never mutated afterwards.
type LedgerEntry struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type        string          `json:"type" gorm:"type:varchar(10);index" validate:"required,oneof=income expense"`
	Source      string          `json:"source" gorm:"type:varchar(30)"`
	Description string          `json:"description" validate:"omitempty,max=255"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	EntryDate   time.Time       `json:"entry_date"`
}
