package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

const profileColumns = `id, email, role, first_name, last_name, profile_picture_url, created_at, updated_at`

// ProfileRepo persists profile snapshots keyed by the identity backend's
// user ID.
type ProfileRepo struct {
	pool *pgxpool.Pool
	now  nowFunc
}

// NewProfileRepo creates a ProfileRepo backed by the given pool.
func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool, now: realNow}
}

// NewProfileRepoWithNow creates a ProfileRepo with a custom clock (useful for tests).
func NewProfileRepoWithNow(pool *pgxpool.Pool, now func() time.Time) *ProfileRepo {
	return &ProfileRepo{pool: pool, now: now}
}

// GetByID retrieves a profile by user ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	defer rows.Close()

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// Upsert inserts the profile or refreshes the stored snapshot when the user
// is already known. Login and verify both call this, so the row always
// mirrors the identity backend's latest answer.
func (r *ProfileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	if p == nil {
		return errors.New("profile is required")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	now := r.now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, role, first_name, last_name, profile_picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_picture_url = EXCLUDED.profile_picture_url,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.Email, p.RawRole, p.FirstName, p.LastName, p.ProfilePictureURL, now)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
