package handlers

import (
	"log"

	"storehub/internal/middleware"
	"storehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the reporting endpoints behind the tenant dashboard.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashRoutes := router.Group("/dashboard")
	dashRoutes.Get("/income/sum", h.HandleIncomeSummary)
	dashRoutes.Get("/orders/count", h.HandleOrderCount)
}

// HandleIncomeSummary returns the tenant's total income from paid bills and
// the income ledger.
func (h *DashboardHandler) HandleIncomeSummary(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	summary, err := h.service.GetIncomeSummary(tenantHandle.DB)
	if err != nil {
		log.Printf("Error computing income summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not compute income summary",
			"details": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleOrderCount returns the number of orders the tenant has taken.
func (h *DashboardHandler) HandleOrderCount(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	count, err := h.service.GetOrderCount(tenantHandle.DB)
	if err != nil {
		log.Printf("Error counting orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not count orders",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"order_count": count})
}
