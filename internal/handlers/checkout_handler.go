package handlers

import (
	"errors"
	"log"

	"storehub/internal/middleware"
	"storehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles the checkout endpoint.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/cart/checkout", h.HandleCheckout)
}

// HandleCheckout converts the request's line items into an order, stock
// decrement, and bill in one transaction on the tenant's database.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	result, err := h.service.Checkout(c.UserContext(), tenantHandle.DB, &req)
	if err != nil {
		var notFound *services.ProductNotFoundError
		var insufficient *services.InsufficientStockError

		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Missing required fields",
				"details": err.Error(),
			})
		case errors.As(err, &notFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Product not found",
				"details": notFound.Error(),
			})
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "Insufficient stock",
				"details": insufficient.Error(),
			})
		default:
			// Full context stays in the server log; raw driver errors leak
			// schema and connection details.
			log.Printf("Checkout failed for tenant %s: %v", tenantHandle.DBName, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Checkout failed",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checkout successful",
		"cart": fiber.Map{
			"order_id":    result.Order.ID,
			"status":      result.Order.Status,
			"total_price": result.Order.TotalPrice,
			"created_at":  result.Order.CreatedAt,
			"items":       result.Order.Items,
			"bill":        result.Bill,
		},
	})
}
