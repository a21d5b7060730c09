// Package model contains the GORM persistence models.
// These structs mirror the database schema and are mapped to and from
// pure domain entities by the repository layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"column:username;type:varchar(30);uniqueIndex;not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	FirstName    string    `gorm:"column:first_name;type:varchar(50)"`
	LastName     string    `gorm:"column:last_name;type:varchar(50)"`
	Phone        string    `gorm:"column:phone;type:varchar(30)"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:user"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
