package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product statuses governing storefront visibility.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product represents an item in a tenant's catalog. Quantity is the stock on
// hand; it never goes negative and is only decremented inside a checkout
// transaction after a locked stock check.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Status      string          `json:"status" gorm:"type:varchar(20);default:active" validate:"omitempty,oneof=active inactive"`
	Type        string          `json:"type" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	gorm.Model  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
