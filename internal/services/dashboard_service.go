package services

import (
	"fmt"

	"storehub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeSummary aggregates the tenant's income from paid bills and the income
// ledger.
type IncomeSummary struct {
	BillsTotal  decimal.Decimal `json:"bills_total"`
	LedgerTotal decimal.Decimal `json:"ledger_total"`
	TotalIncome decimal.Decimal `json:"total_income"`
}

// DashboardService serves the reporting aggregations behind the dashboard.
// All queries are read-only against the tenant database.
type DashboardService struct{}

// NewDashboardService creates a new DashboardService.
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// GetIncomeSummary sums paid bills and manually recorded income. Sale ledger
// entries are excluded here because their amounts are already counted through
// the bills they mirror.
func (s *DashboardService) GetIncomeSummary(db *gorm.DB) (*IncomeSummary, error) {
	var billsTotal decimal.Decimal
	row := db.Model(&models.Bill{}).
		Where("payment_status = ?", "paid").
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&billsTotal); err != nil {
		return nil, fmt.Errorf("failed to sum paid bills: %w", err)
	}

	var ledgerTotal decimal.Decimal
	row = db.Model(&models.LedgerEntry{}).
		Where("type = ? AND source = ?", models.LedgerIncome, models.LedgerSourceManual).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&ledgerTotal); err != nil {
		return nil, fmt.Errorf("failed to sum income ledger entries: %w", err)
	}

	return &IncomeSummary{
		BillsTotal:  billsTotal,
		LedgerTotal: ledgerTotal,
		TotalIncome: billsTotal.Add(ledgerTotal),
	}, nil
}

// GetOrderCount returns the number of orders the tenant has taken.
func (s *DashboardService) GetOrderCount(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
