package services_test

import (
	"testing"

	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOrderService_GetAllOrders(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo)

	orders, err := service.GetAllOrders(nil)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order := &models.Order{
		Status:     "completed",
		TotalPrice: decimal.RequireFromString("42.00"),
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("21.00")},
		},
	}
	require.NoError(t, orderRepo.Create(nil, order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	orders, err = service.GetAllOrders(nil)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo)

	order := &models.Order{
		ID:         "order-1",
		Status:     "pending",
		TotalPrice: decimal.RequireFromString("10.00"),
	}
	require.NoError(t, orderRepo.Create(nil, order))

	found, err := service.GetOrderByID(nil, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", found.Status)
	assert.True(t, found.TotalPrice.Equal(decimal.RequireFromString("10.00")))

	_, err = service.GetOrderByID(nil, "missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "misses surface the typed not-found error")
}

func TestMockProductRepository_StockGuards(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := &models.Product{Name: "Widget", Price: decimal.NewFromInt(3), Quantity: 4}
	require.NoError(t, repo.Create(nil, product))
	assert.Equal(t, models.ProductActive, product.Status, "status defaults to active")

	require.NoError(t, repo.DecrementStock(nil, product.ID, 4))
	stored, err := repo.GetByID(nil, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity)

	// The guard refuses to push stock below zero
	err = repo.DecrementStock(nil, product.ID, 1)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
}
