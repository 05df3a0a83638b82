package tenant

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storehub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrTenantNotFound is returned when a subdomain or database name does not
// map to a provisioned tenant.
var ErrTenantNotFound = errors.New("tenant not found")

// Handle is the per-request tenant context produced by the middleware: the
// tenant's database plus the identity the request resolved to.
type Handle struct {
	DB       *gorm.DB
	ClientID string
	DBName   string
}

// Opener opens a connection pool for one tenant database.
type Opener func(dbName string) (*gorm.DB, error)

// Resolver maps tenant identifiers to database pools. Pools are opened lazily
// on first use, cached for the process lifetime, and shared by every request
// for the same tenant.
type Resolver struct {
	master *gorm.DB
	opener Opener

	mu    sync.Mutex
	pools map[string]*gorm.DB
}

// NewResolver creates a Resolver backed by the master database for subdomain
// lookups and the given opener for tenant pools.
func NewResolver(master *gorm.DB, opener Opener) *Resolver {
	return &Resolver{
		master: master,
		opener: opener,
		pools:  make(map[string]*gorm.DB),
	}
}

// PostgresOpener returns an Opener that connects to the named database on the
// configured Postgres host, with pool limits suitable for production.
func PostgresOpener(host, port, user, password, sslMode string) Opener {
	return func(dbName string) (*gorm.DB, error) {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, user, password, dbName, port, sslMode,
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open tenant database %s: %w", dbName, err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access pool for tenant database %s: %w", dbName, err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil
	}
}

// Resolve returns the cached pool for the named tenant database, opening it
// on first use.
func (r *Resolver) Resolve(dbName string) (*gorm.DB, error) {
	if dbName == "" {
		return nil, fmt.Errorf("%w: empty database name", ErrTenantNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.pools[dbName]; ok {
		return db, nil
	}

	db, err := r.opener(dbName)
	if err != nil {
		log.Printf("Failed to open database for tenant %s: %v", dbName, err)
		return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, dbName)
	}

	r.pools[dbName] = db
	return db, nil
}

// ResolveSubdomain looks a storefront subdomain up in the master clients
// table and resolves its database.
func (r *Resolver) ResolveSubdomain(subdomain string) (*Handle, error) {
	var client models.Client
	if err := r.master.First(&client, "subdomain = ?", subdomain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: subdomain %s", ErrTenantNotFound, subdomain)
		}
		return nil, fmt.Errorf("failed to look up subdomain %s: %w", subdomain, err)
	}

	db, err := r.Resolve(client.DBName)
	if err != nil {
		return nil, err
	}

	return &Handle{DB: db, ClientID: client.ID, DBName: client.DBName}, nil
}

// Close tears down every cached tenant pool. Called once on shutdown.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, db := range r.pools {
		sqlDB, err := db.DB()
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to access pool for %s: %w", name, err))
			continue
		}
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close pool for %s: %w", name, err))
		}
	}
	r.pools = make(map[string]*gorm.DB)

	if len(errs) > 0 {
		return fmt.Errorf("errors closing tenant pools: %v", errs)
	}
	return nil
}
