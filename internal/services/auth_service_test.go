package services_test

import (
	"fmt"
	"testing"

	"storehub/internal/models"
	"storehub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

// MockClientRepository is a mock implementation of repositories.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByEmail(email string) (*models.Client, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) GetBySubdomain(subdomain string) (*models.Client, error) {
	args := m.Called(subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) GetByID(id string) (*models.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) Create(client *models.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func TestAuthService_RegisterClient(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	client := &models.Client{Email: "owner@alpha.example", Subdomain: "alpha"}

	mockRepo.On("GetByEmail", client.Email).Return(nil, fmt.Errorf("client not found")).Once()
	mockRepo.On("GetBySubdomain", client.Subdomain).Return(nil, fmt.Errorf("client not found")).Once()
	mockRepo.On("Create", client).Return(nil).Once()

	err := service.RegisterClient(client, "secret123")

	require.NoError(t, err)
	assert.Equal(t, "store_alpha", client.DBName, "db name defaults from the subdomain")
	assert.NotEqual(t, "secret123", client.PasswordHash, "password must never be stored raw")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte("secret123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterClient_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	existing := &models.Client{ID: "c1", Email: "owner@alpha.example", Subdomain: "alpha"}
	mockRepo.On("GetByEmail", existing.Email).Return(existing, nil).Once()

	err := service.RegisterClient(&models.Client{Email: existing.Email, Subdomain: "beta"}, "secret123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterClient_DuplicateSubdomain(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	existing := &models.Client{ID: "c1", Email: "owner@alpha.example", Subdomain: "alpha"}
	mockRepo.On("GetByEmail", "other@beta.example").Return(nil, fmt.Errorf("client not found")).Once()
	mockRepo.On("GetBySubdomain", "alpha").Return(existing, nil).Once()

	err := service.RegisterClient(&models.Client{Email: "other@beta.example", Subdomain: "alpha"}, "secret123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginClient(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	client := &models.Client{
		ID:           "c1",
		Email:        "owner@alpha.example",
		PasswordHash: string(hash),
		Subdomain:    "alpha",
		DBName:       "store_alpha",
	}
	mockRepo.On("GetByEmail", client.Email).Return(client, nil).Once()

	token, err := service.LoginClient(client.Email, "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must carry the routing claims the middleware depends on.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "c1", claims["client_id"])
	assert.Equal(t, "owner@alpha.example", claims["email"])
	assert.Equal(t, "store_alpha", claims["dbname"])
	assert.NotZero(t, claims["exp"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginClient_WrongPassword(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	client := &models.Client{ID: "c1", Email: "owner@alpha.example", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", client.Email).Return(client, nil).Once()

	_, err = service.LoginClient(client.Email, "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginClient_UnknownEmail(t *testing.T) {
	mockRepo := new(MockClientRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByEmail", "ghost@nowhere.example").Return(nil, fmt.Errorf("client not found")).Once()

	_, err := service.LoginClient("ghost@nowhere.example", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Tampered(t *testing.T) {
	service := services.NewAuthService(new(MockClientRepository), testJWTSecret)
	other := services.NewAuthService(new(MockClientRepository), "another-secret")

	mockRepo := new(MockClientRepository)
	issuer := services.NewAuthService(mockRepo, "another-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	client := &models.Client{ID: "c1", Email: "a@b.example", PasswordHash: string(hash), DBName: "store_a"}
	mockRepo.On("GetByEmail", client.Email).Return(client, nil).Once()

	token, err := issuer.LoginClient(client.Email, "pw")
	require.NoError(t, err)

	// Accepted by the issuing secret, rejected by a different one.
	_, err = other.ValidateToken(token)
	assert.NoError(t, err)
	_, err = service.ValidateToken(token)
	assert.Error(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
