package repositories

import (
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMClientRepository is a GORM implementation of ClientRepository bound to
// the master database.
type GORMClientRepository struct {
	db *gorm.DB
}

// NewGORMClientRepository creates a new instance of GORMClientRepository.
func NewGORMClientRepository(db *gorm.DB) *GORMClientRepository {
	return &GORMClientRepository{
		db: db,
	}
}

// Create creates a new client in the master database.
func (r *GORMClientRepository) Create(client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if err := r.db.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByEmail retrieves a client by their email.
func (r *GORMClientRepository) GetByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get client by email %s: %w", email, err)
	}
	return &client, nil
}

// GetBySubdomain retrieves a client by their storefront subdomain.
func (r *GORMClientRepository) GetBySubdomain(subdomain string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "subdomain = ?", subdomain).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client with subdomain %s not found", subdomain)
		}
		return nil, fmt.Errorf("failed to get client by subdomain %s: %w", subdomain, err)
	}
	return &client, nil
}

// GetByID retrieves a client by their ID.
func (r *GORMClientRepository) GetByID(id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get client by ID %s: %w", id, err)
	}
	return &client, nil
}
