package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the invoice generated for a completed order, 1:1 with the order.
// TotalAmount equals the order's total price at creation time.
type Bill struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string          `json:"order_id" gorm:"type:varchar(36);uniqueIndex"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2)"`
	PaymentStatus string          `json:"payment_status" gorm:"type:varchar(20)"` // e.g., "paid", "unpaid"
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(30)"`
	GeneratedAt   time.Time       `json:"generated_at" gorm:"autoCreateTime"`
}
