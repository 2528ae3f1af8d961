package dto

import (
	"time"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// --- Studio DTOs ---

// CreateStudioRequest defines data for creating a new studio.
type CreateStudioRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
}

// StudioResponse defines data returned for a studio.
type StudioResponse struct {
	StudioID      string    `json:"studioID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID
}

// ToStudioResponse converts domain.Studio to DTO.
func ToStudioResponse(s *domain.Studio) StudioResponse {
	return StudioResponse{
		StudioID:      s.StudioID,
		Name:          s.Name,
		Description:   s.Description,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ListStudiosResponse wraps a list of studios.
type ListStudiosResponse struct {
	Studios []StudioResponse `json:"studios"`
}

// ToListStudiosResponse converts a slice of domain.Studio to DTO.
func ToListStudiosResponse(ss []domain.Studio) ListStudiosResponse {
	list := make([]StudioResponse, len(ss))
	for i, s := range ss {
		list[i] = ToStudioResponse(&s)
	}
	return ListStudiosResponse{Studios: list}
}

// --- User Studio Membership DTOs ---

// AddUserToStudioRequest defines data for adding a user to a studio.
type AddUserToStudioRequest struct {
	UserID string                `json:"userID" binding:"required"`
	Role   domain.UserStudioRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UserStudioResponse defines data returned about a user's membership.
type UserStudioResponse struct {
	UserID   string                `json:"userID"`
	StudioID string                `json:"studioID"`
	Role     domain.UserStudioRole `json:"role"`
	JoinedAt time.Time             `json:"joinedAt"`
}

// ToUserStudioResponse converts domain.UserStudio to DTO.
func ToUserStudioResponse(us *domain.UserStudio) UserStudioResponse {
	return UserStudioResponse{
		UserID:   us.UserID,
		StudioID: us.StudioID,
		Role:     us.Role,
		JoinedAt: us.JoinedAt,
	}
}
