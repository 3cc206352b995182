package presenter

import (
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/auth"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ToUserResponse maps a user to its API shape
func ToUserResponse(u *entities.User) *auth.UserResponse {
	return &auth.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
