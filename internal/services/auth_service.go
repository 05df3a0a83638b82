package services

import (
	"fmt"
	"log"
	"time"

	"storehub/internal/models"
	"storehub/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles tenant account registration and login. Tokens carry the
// tenant's database name so the middleware can route every later request to
// the right database.
type AuthService struct {
	clientRepo repositories.ClientRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(clientRepo repositories.ClientRepository, jwtSecret string) *AuthService {
	return &AuthService{
		clientRepo: clientRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterClient registers a new tenant account in the master database. The
// tenant database itself is provisioned out of band; until it exists, tenant
// resolution for this account fails with not-found.
func (s *AuthService) RegisterClient(client *models.Client, password string) error {
	if existing, err := s.clientRepo.GetByEmail(client.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", client.Email)
	}
	if existing, err := s.clientRepo.GetBySubdomain(client.Subdomain); err == nil && existing != nil {
		return fmt.Errorf("subdomain '%s' already taken", client.Subdomain)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	client.PasswordHash = string(hashedPassword)

	if client.DBName == "" {
		client.DBName = fmt.Sprintf("store_%s", client.Subdomain)
	}

	if err := s.clientRepo.Create(client); err != nil {
		return fmt.Errorf("failed to register client: %w", err)
	}
	return nil
}

// LoginClient authenticates a tenant account and returns a JWT token carrying
// the tenant's database name.
func (s *AuthService) LoginClient(email, password string) (string, error) {
	client, err := s.clientRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"client_id": client.ID,
		"email":     client.Email,
		"dbname":    client.DBName,
		"exp":       time.Now().Add(s.tokenDurat).Unix(),
		"iat":       time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
