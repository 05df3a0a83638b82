package handlers

import (
	"errors"
	"fmt"
	"log"

	"storehub/internal/middleware"
	"storehub/internal/models"
	"storehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EmployeeHandler handles HTTP requests for a tenant's staff records.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the employee routes with the Fiber app.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	employeeRoutes := router.Group("/employees")
	employeeRoutes.Get("/", h.HandleGetEmployees)
	employeeRoutes.Post("/", h.HandleAddEmployee)
	employeeRoutes.Put("/:id", h.HandleUpdateEmployee)
}

// HandleGetEmployees retrieves all employees of the tenant.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	employees, err := h.service.GetAllEmployees(tenantHandle.DB)
	if err != nil {
		log.Printf("Error getting all employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not retrieve employees",
			"details": err.Error(),
		})
	}
	return c.JSON(employees)
}

// HandleAddEmployee creates a new employee record.
func (h *EmployeeHandler) HandleAddEmployee(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	if err := h.validate.Struct(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	if err := h.service.AddEmployee(tenantHandle.DB, &employee); err != nil {
		log.Printf("Error adding employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not add employee",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee added successfully",
		"data":    employee,
	})
}

// HandleUpdateEmployee updates an existing employee record.
func (h *EmployeeHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	tenantHandle := middleware.TenantFromCtx(c)
	if tenantHandle == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No tenant resolved for this request",
		})
	}

	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}
	employee.ID = c.Params("id")

	if err := h.validate.Struct(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	if err := h.service.UpdateEmployee(tenantHandle.DB, &employee); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Employee with ID %s not found", employee.ID),
			})
		}
		log.Printf("Error updating employee %s: %v", employee.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not update employee",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Employee %s updated successfully", employee.ID),
		"data":    employee,
	})
}
