package services

import (
	"storehub/internal/models"
	"storehub/internal/repositories"

	"gorm.io/gorm"
)

// OrderService serves reads over committed orders. Orders are only created
// through the CheckoutService and never modified afterwards, so there are no
// write methods here.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetAllOrders retrieves all orders of the tenant.
func (s *OrderService) GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	return s.orderRepo.GetAll(db)
}

// GetOrderByID retrieves a single order with its items and bill.
func (s *OrderService) GetOrderByID(db *gorm.DB, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(db, id)
}
