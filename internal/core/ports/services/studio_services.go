package services

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// StudioReaderSvc defines read operations for studio data
type StudioReaderSvc interface {
	// FindStudioByID retrieves a specific studio by its ID.
	FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error)

	// ListUserStudios retrieves studios a user belongs to.
	// If includeDisabled is true, it includes inactive studios.
	ListUserStudios(ctx context.Context, userID string, includeDisabled bool) ([]domain.Studio, error)

	// ListStudioUsers retrieves all users and their roles for a specific studio.
	// Only members of the studio can access this data.
	ListStudioUsers(ctx context.Context, studioID string, requestingUserID string) ([]domain.UserStudio, error)
}

// StudioWriterSvc defines write operations for studio data
type StudioWriterSvc interface {
	// CreateStudio persists a new studio with the creator as admin.
	CreateStudio(ctx context.Context, name, description, creatorUserID string) (*domain.Studio, error)

	// DeactivateStudio marks a studio as inactive.
	DeactivateStudio(ctx context.Context, studioID string, requestingUserID string) error
}

// StudioMembershipSvc defines operations for managing studio membership
type StudioMembershipSvc interface {
	// AddUserToStudio adds a user to a studio with a specific role.
	AddUserToStudio(ctx context.Context, addingUserID, targetUserID, studioID string, role domain.UserStudioRole) error
}

// StudioAuthorizerSvc defines operations for studio authorization
type StudioAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a studio.
	AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error
}

// StudioSvcFacade combines all studio-related service interfaces
// This is a facade for clients that need access to all operations
type StudioSvcFacade interface {
	StudioReaderSvc
	StudioWriterSvc
	StudioMembershipSvc
	StudioAuthorizerSvc
}
