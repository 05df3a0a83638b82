package repositories

import (
	"storehub/internal/models"
)

// ClientRepository defines the interface for tenant account data access.
// Clients live in the single master database, so implementations hold their
// own handle rather than taking one per call.
type ClientRepository interface {
	GetByEmail(email string) (*models.Client, error)
	GetBySubdomain(subdomain string) (*models.Client, error)
	GetByID(id string) (*models.Client, error)
	Create(client *models.Client) error
}
