package domain

import "time"

// Studio represents an isolated design-studio tenant containing bank
// transactions, payments, etc.
type Studio struct {
	StudioID    string `json:"studioID"`    // Primary Key (e.g., UUID)
	Name        string `json:"name"`        // User-defined name for the studio
	Description string `json:"description"` // Optional description
	IsActive    bool   `json:"isActive"`    // Indicates whether the studio is active or disabled
	AuditFields        // Embed common audit fields
}

// UserStudioRole defines the possible roles a user can have within a studio.
type UserStudioRole string

const (
	RoleAdmin    UserStudioRole = "ADMIN"
	RoleMember   UserStudioRole = "MEMBER"
	RoleReadOnly UserStudioRole = "READONLY" // Users with read-only access to studio data
	RoleRemoved  UserStudioRole = "REMOVED"  // For users who have been removed from the studio
)

// UserStudio represents the membership of a User in a Studio.
type UserStudio struct {
	UserID   string         `json:"userID"`   // FK -> users.user_id
	UserName string         `json:"userName"` // Name of the user
	StudioID string         `json:"studioID"` // FK -> studios.studio_id
	Role     UserStudioRole `json:"role"`     // Role of the user in this specific studio
	JoinedAt time.Time      `json:"joinedAt"` // Timestamp when the user joined the studio
}
