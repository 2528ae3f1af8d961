package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DesignDeskHQ/design_desk_app/internal/apperrors"
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	"github.com/DesignDeskHQ/design_desk_app/internal/models"
	"github.com/DesignDeskHQ/design_desk_app/internal/utils/mapping"
)

type PgxStudioRepository struct {
	db *pgxpool.Pool
}

func newPgxStudioRepository(db *pgxpool.Pool) portsrepo.StudioRepositoryFacade {
	return &PgxStudioRepository{db: db}
}

var _ portsrepo.StudioRepositoryFacade = (*PgxStudioRepository)(nil)

func (r *PgxStudioRepository) SaveStudio(ctx context.Context, studio domain.Studio) error {
	m := mapping.ToModelStudio(studio)
	query := `
        INSERT INTO studios (studio_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.StudioID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("studio already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save studio: %w", err)
	}
	return nil
}

func (r *PgxStudioRepository) FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error) {
	query := `
		SELECT studio_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM studios
		WHERE studio_id = $1;
	`
	var m models.Studio
	err := r.db.QueryRow(ctx, query, studioID).Scan(
		&m.StudioID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find studio by ID %s: %w", studioID, err)
	}
	d := mapping.ToDomainStudio(m)
	return &d, nil
}

func (r *PgxStudioRepository) ListStudiosByUserID(ctx context.Context, userID string) ([]domain.Studio, error) {
	query := `
        SELECT s.studio_id, s.name, s.description, s.is_active, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
        FROM studios s
        JOIN user_studios us ON us.studio_id = s.studio_id
        WHERE us.user_id = $1 AND us.role != $2
        ORDER BY s.created_at;
    `
	rows, err := r.db.Query(ctx, query, userID, string(domain.RoleRemoved))
	if err != nil {
		return nil, fmt.Errorf("failed to query studios for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelStudios := []models.Studio{}
	for rows.Next() {
		var m models.Studio
		err := rows.Scan(
			&m.StudioID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan studio row: %w", err)
		}
		modelStudios = append(modelStudios, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating studio rows: %w", rows.Err())
	}

	return mapping.ToDomainStudioSlice(modelStudios), nil
}

func (r *PgxStudioRepository) UpdateStudio(ctx context.Context, studio domain.Studio) error {
	m := mapping.ToModelStudio(studio)
	query := `
        UPDATE studios
        SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
        WHERE studio_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.StudioID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update studio query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("studio not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStudioRepository) AddUserToStudio(ctx context.Context, membership domain.UserStudio) error {
	query := `
        INSERT INTO user_studios (user_id, studio_id, role, joined_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $4, $5, $4, $5)
        ON CONFLICT (user_id, studio_id) DO UPDATE SET
            role = EXCLUDED.role,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		membership.UserID,
		membership.StudioID,
		string(membership.Role),
		membership.JoinedAt,
		membership.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to add user to studio: %w", err)
	}
	return nil
}

func (r *PgxStudioRepository) FindUserStudioRole(ctx context.Context, userID, studioID string) (*domain.UserStudio, error) {
	query := `
        SELECT us.user_id, us.studio_id, us.role, us.joined_at, u.name
        FROM user_studios us
        JOIN users u ON u.user_id = us.user_id
        WHERE us.user_id = $1 AND us.studio_id = $2;
    `
	var membership domain.UserStudio
	var role string
	err := r.db.QueryRow(ctx, query, userID, studioID).Scan(
		&membership.UserID,
		&membership.StudioID,
		&role,
		&membership.JoinedAt,
		&membership.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	membership.Role = domain.UserStudioRole(role)
	return &membership, nil
}

func (r *PgxStudioRepository) ListStudioUsers(ctx context.Context, studioID string) ([]domain.UserStudio, error) {
	query := `
        SELECT us.user_id, us.studio_id, us.role, us.joined_at, u.name
        FROM user_studios us
        JOIN users u ON u.user_id = us.user_id
        WHERE us.studio_id = $1 AND us.role != $2
        ORDER BY us.joined_at;
    `
	rows, err := r.db.Query(ctx, query, studioID, string(domain.RoleRemoved))
	if err != nil {
		return nil, fmt.Errorf("failed to query studio members: %w", err)
	}
	defer rows.Close()

	memberships := []domain.UserStudio{}
	for rows.Next() {
		var m domain.UserStudio
		var role string
		if err := rows.Scan(&m.UserID, &m.StudioID, &role, &m.JoinedAt, &m.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		m.Role = domain.UserStudioRole(role)
		memberships = append(memberships, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", rows.Err())
	}

	return memberships, nil
}
