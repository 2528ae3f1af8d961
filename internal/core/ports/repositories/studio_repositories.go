package repositories

import (
	"context"

	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
)

// StudioReader defines read operations for studio data
type StudioReader interface {
	// FindStudioByID retrieves a specific studio by its ID.
	FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error)

	// ListStudiosByUserID retrieves all studios a user belongs to.
	ListStudiosByUserID(ctx context.Context, userID string) ([]domain.Studio, error)
}

// StudioWriter defines write operations for studio data
type StudioWriter interface {
	// SaveStudio persists a new studio.
	SaveStudio(ctx context.Context, studio domain.Studio) error

	// UpdateStudio updates an existing studio's details.
	UpdateStudio(ctx context.Context, studio domain.Studio) error
}

// StudioMembershipManager defines operations for managing studio memberships
type StudioMembershipManager interface {
	// AddUserToStudio adds a user to a studio with a specific role.
	AddUserToStudio(ctx context.Context, membership domain.UserStudio) error

	// FindUserStudioRole retrieves the role of a user in a studio.
	FindUserStudioRole(ctx context.Context, userID, studioID string) (*domain.UserStudio, error)

	// ListStudioUsers retrieves all memberships of a studio.
	ListStudioUsers(ctx context.Context, studioID string) ([]domain.UserStudio, error)
}

// StudioRepositoryFacade combines all studio-related repository interfaces
// This is a facade for clients that need access to all operations
type StudioRepositoryFacade interface {
	StudioReader
	StudioWriter
	StudioMembershipManager
}
