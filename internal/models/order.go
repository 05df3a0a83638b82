package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a single line within an order. The unit price is a snapshot
// taken at checkout time and does not follow later product price changes.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	OrderID   string          `json:"-" gorm:"type:varchar(36);index"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2)"`
}

// Order groups the line items bought in one checkout. Orders and their items
// are created together in one transaction and never updated afterwards.
type Order struct {
	ID         string          `json:"order_id" gorm:"primaryKey;type:varchar(36)"`
	Status     string          `json:"status" gorm:"type:varchar(20)"` // e.g., "pending", "completed"
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2)"`
	Items      []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Bill       *Bill           `json:"bill,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time       `json:"created_at"`
}
