package handlers

import (
	"errors"
	"log"

	"storehub/internal/middleware"
	"storehub/internal/models"
	"storehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FinanceHandler handles HTTP requests for the manual income/expense ledger.
type FinanceHandler struct {
	service *services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(service *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		service: service,
	}
}

// RegisterRoutes registers the finance routes with the Fiber app.
func (h *FinanceHandler) RegisterRoutes(router fiber.Router) {
	financeRoutes := router.Group("/finance")
	financeRoutes.Post("/incomes", h.HandleAddIncome)
	financeRoutes.Post("/expenses", h.HandleAddExpense)
	financeRoutes.Get("/ledger", h.HandleGetLedger)
}

// HandleAddIncome records a manual income entry.
func (h *FinanceHandler) HandleAddIncome(c *fiber.Ctx) error {
	return h.addEntry(c, models.LedgerIncome)
}

// HandleAddExpense records a manual expense entry.
func (h *FinanceHandler) HandleAddExpense(c *fiber.Ctx) error {
	return h.addEntry(c, models.LedgerExpense)
}

func (h *FinanceHandler) addEntry(c *fiber.Ctx, entryType string) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	var entry models.LedgerEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}
	entry.Type = entryType

	if err := h.service.AddEntry(tenantHandle.DB, &entry); err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": err.Error(),
			})
		}
		log.Printf("Error adding %s ledger entry: %v", entryType, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not record ledger entry",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Ledger entry added successfully",
		"data":    entry,
	})
}

// HandleGetLedger retrieves ledger entries, optionally filtered by ?type=.
func (h *FinanceHandler) HandleGetLedger(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	entries, err := h.service.GetEntries(tenantHandle.DB, c.Query("type"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid ledger type",
				"details": err.Error(),
			})
		}
		log.Printf("Error getting ledger entries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not retrieve ledger entries",
			"details": err.Error(),
		})
	}
	return c.JSON(entries)
}
