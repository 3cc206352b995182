package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can call the API
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(50);default:'member';not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true;not null"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" gorm:"type:timestamp"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a member account. The password hash is set by the auth
// service before persisting.
func NewUser(email, name string) *User {
	return &User{
		ID:       uuid.New(),
		Email:    email,
		Name:     name,
		Role:     RoleMember,
		IsActive: true,
	}
}

// IsAdmin checks if user is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
