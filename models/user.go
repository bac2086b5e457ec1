// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:staff" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// rolePermissions is the static capability map. Admins hold the full
// wildcard; staff can submit and read but not delete or export.
var rolePermissions = map[string][]string{
	RoleAdmin: {"*"},
	RoleStaff: {"rondas:create", "rondas:read"},
}

// PermissionsForRole returns the permissions granted to a role. Unknown
// roles get nothing.
func PermissionsForRole(role string) []string {
	return rolePermissions[role]
}
