package middleware

import (
	"errors"
	"log"
	"strings"

	"storehub/internal/services"
	"storehub/internal/tenant"

	"github.com/gofiber/fiber/v2"
)

const tenantLocalsKey = "tenant"

// TenantRequired authenticates the request's Bearer token and resolves the
// tenant database it names, storing a tenant.Handle in the request context.
// This is the single auth/tenant layer: every protected route goes through it
// and receives the same typed handle.
func TenantRequired(authService *services.AuthService, resolver *tenant.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Invalid or expired token",
				"details": err.Error(),
			})
		}

		dbName, _ := claims["dbname"].(string)
		db, err := resolver.Resolve(dbName)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Store not found.",
				})
			}
			log.Printf("Tenant resolution failed for %s: %v", dbName, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		clientID, _ := claims["client_id"].(string)
		c.Locals(tenantLocalsKey, &tenant.Handle{
			DB:       db,
			ClientID: clientID,
			DBName:   dbName,
		})

		return c.Next()
	}
}

// StorefrontTenant resolves the tenant from a ?subdomain= query parameter for
// public storefront routes that carry no token.
func StorefrontTenant(resolver *tenant.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subdomain := strings.ToLower(strings.TrimSpace(c.Query("subdomain")))
		if subdomain == "" || subdomain == "www" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid or missing subdomain.",
			})
		}

		handle, err := resolver.ResolveSubdomain(subdomain)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Store not found.",
				})
			}
			log.Printf("Storefront tenant resolution failed for %s: %v", subdomain, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		c.Locals(tenantLocalsKey, handle)
		return c.Next()
	}
}

// TenantFromCtx returns the tenant handle stored by TenantRequired or
// StorefrontTenant, or nil when neither ran.
func TenantFromCtx(c *fiber.Ctx) *tenant.Handle {
	handle, _ := c.Locals(tenantLocalsKey).(*tenant.Handle)
	return handle
}
