package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember represents a person tasks can be assigned to
type TeamMember struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Role      string    `json:"role,omitempty" gorm:"type:varchar(100)"`
	IsActive  bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// NewTeamMember creates an active team member
func NewTeamMember(name, email, role string) *TeamMember {
	return &TeamMember{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: true,
	}
}
