package handlers

import (
	"errors"
	"fmt"
	"log"

	"storehub/internal/middleware"
	"storehub/internal/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrderHandler handles read requests for orders. Orders are created through
// the checkout endpoint only.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleGetOrders retrieves all orders of the tenant.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	orders, err := h.service.GetAllOrders(tenantHandle.DB)
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not retrieve orders",
			"details": err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order with its items and bill.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(tenantHandle.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not retrieve order",
			"details": err.Error(),
		})
	}
	return c.JSON(order)
}
