package models

import "gorm.io/gorm"

// Client is a tenant account stored in the master database. DBName names the
// tenant's own Postgres database; provisioning that database is handled
// outside this service.
type Client struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
	Subdomain    string `json:"subdomain" gorm:"uniqueIndex;type:varchar(63)" validate:"required,min=3,max=63,alphanum"`
	DBName       string `json:"db_name" gorm:"column:db_name;type:varchar(63)"`
	gorm.Model   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
