package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/middleware"
)

// StudioService handles business logic related to studios and memberships.
type StudioService struct {
	studioRepo portsrepo.StudioRepositoryFacade
}

// NewStudioService creates a new StudioService.
func NewStudioService(sr portsrepo.StudioRepositoryFacade) portssvc.StudioSvcFacade {
	return &StudioService{studioRepo: sr}
}

var _ portssvc.StudioSvcFacade = (*StudioService)(nil)

// CreateStudio creates a new studio and makes the creator the initial admin.
func (s *StudioService) CreateStudio(ctx context.Context, name, description, creatorUserID string) (*domain.Studio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	newStudioID := uuid.NewString()

	studio := domain.Studio{
		StudioID:    newStudioID,
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.studioRepo.SaveStudio(ctx, studio); err != nil {
		logger.Error("Failed to save studio in repository", slog.String("error", err.Error()), slog.String("studio_name", name))
		return nil, fmt.Errorf("failed to create studio: %w", err)
	}

	membership := domain.UserStudio{
		UserID:   creatorUserID,
		StudioID: newStudioID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.studioRepo.AddUserToStudio(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin to new studio", slog.String("error", err.Error()), slog.String("studio_id", newStudioID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to add creator to studio: %w", err)
	}

	logger.Info("Studio created successfully", slog.String("studio_id", newStudioID), slog.String("creator_user_id", creatorUserID))
	return &studio, nil
}

// FindStudioByID retrieves a studio by its ID.
func (s *StudioService) FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("studio not found")
		}
		logger.Error("Failed to find studio by ID in repository", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return nil, err
	}
	return studio, nil
}

// ListUserStudios retrieves the studios a given user belongs to.
func (s *StudioService) ListUserStudios(ctx context.Context, userID string, includeDisabled bool) ([]domain.Studio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	studios, err := s.studioRepo.ListStudiosByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list studios for user from repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list studios for user %s: %w", userID, err)
	}

	if !includeDisabled {
		active := studios[:0]
		for _, st := range studios {
			if st.IsActive {
				active = append(active, st)
			}
		}
		studios = active
	}

	if studios == nil {
		return []domain.Studio{}, nil
	}
	return studios, nil
}

// ListStudioUsers retrieves all memberships of a studio. The requesting user
// must be a member.
func (s *StudioService) ListStudioUsers(ctx context.Context, studioID string, requestingUserID string) ([]domain.UserStudio, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	memberships, err := s.studioRepo.ListStudioUsers(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list studio users: %w", err)
	}
	return memberships, nil
}

// DeactivateStudio marks a studio as inactive. Admin only.
func (s *StudioService) DeactivateStudio(ctx context.Context, studioID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleAdmin); err != nil {
		return err
	}

	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		return err
	}

	studio.IsActive = false
	studio.LastUpdatedAt = time.Now()
	studio.LastUpdatedBy = requestingUserID

	if err := s.studioRepo.UpdateStudio(ctx, *studio); err != nil {
		logger.Error("Failed to deactivate studio", slog.String("error", err.Error()), slog.String("studio_id", studioID))
		return fmt.Errorf("failed to deactivate studio %s: %w", studioID, err)
	}

	logger.Info("Studio deactivated", slog.String("studio_id", studioID), slog.String("requesting_user_id", requestingUserID))
	return nil
}

// AddUserToStudio adds a user to a studio with a specific role. Only studio
// admins may add users.
func (s *StudioService) AddUserToStudio(ctx context.Context, addingUserID, targetUserID, studioID string, role domain.UserStudioRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, addingUserID, studioID, domain.RoleAdmin); err != nil {
		return err
	}

	now := time.Now()
	membership := domain.UserStudio{
		UserID:   targetUserID,
		StudioID: studioID,
		Role:     role,
		JoinedAt: now,
	}

	if err := s.studioRepo.AddUserToStudio(ctx, membership); err != nil {
		logger.Error("Failed to add user to studio in repository", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("studio_id", studioID))
		return fmt.Errorf("failed to add user %s to studio %s: %w", targetUserID, studioID, err)
	}

	logger.Info("User added to studio successfully", slog.String("target_user_id", targetUserID), slog.String("studio_id", studioID), slog.String("role", string(role)), slog.String("added_by_user_id", addingUserID))
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within a specific studio.
// Returns apperrors.ErrNotFound if the user is not a member, so membership is
// not revealed to outsiders. Returns apperrors.ErrForbidden if the user is a
// member but lacks the required role.
func (s *StudioService) AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.studioRepo.FindUserStudioRole(ctx, userID, studioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: user not a member of studio", slog.String("user_id", userID), slog.String("studio_id", studioID))
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to check user studio role in repository", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("studio_id", studioID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if roleRank(membership.Role) >= roleRank(requiredRole) && membership.Role != domain.RoleRemoved {
		return nil
	}

	logger.Warn("Authorization failed: user lacks required role", slog.String("user_id", userID), slog.String("studio_id", studioID), slog.String("user_role", string(membership.Role)), slog.String("required_role", string(requiredRole)))
	return apperrors.ErrForbidden
}

// roleRank orders roles so higher roles satisfy lower requirements.
func roleRank(role domain.UserStudioRole) int {
	switch role {
	case domain.RoleAdmin:
		return 3
	case domain.RoleMember:
		return 2
	case domain.RoleReadOnly:
		return 1
	default:
		return 0
	}
}
