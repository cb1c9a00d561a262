package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

// SavedSearchRepo persists saved searches. Names are unique per scout.
type SavedSearchRepo struct {
	pool *pgxpool.Pool
	now  nowFunc
}

// NewSavedSearchRepo creates a SavedSearchRepo backed by the given pool.
func NewSavedSearchRepo(pool *pgxpool.Pool) *SavedSearchRepo {
	return &SavedSearchRepo{pool: pool, now: realNow}
}

// Create inserts a saved search and fills in the generated ID and timestamp.
func (r *SavedSearchRepo) Create(ctx context.Context, s *model.SavedSearch) error {
	if s == nil {
		return errors.New("saved search is required")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO saved_searches (scout_id, name, expression, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		s.ScoutID, s.Name, s.Expression, r.now(),
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSearchNameExists
		}
		return fmt.Errorf("failed to create saved search: %w", err)
	}
	return nil
}

// ListByScout retrieves a scout's saved searches, newest first.
func (r *SavedSearchRepo) ListByScout(ctx context.Context, scoutID string) ([]*model.SavedSearch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, scout_id, name, expression, created_at
		FROM saved_searches
		WHERE scout_id = $1
		ORDER BY created_at DESC`, scoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.SavedSearch])
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	res := make([]*model.SavedSearch, len(out))
	for i := range out {
		res[i] = &out[i]
	}
	return res, nil
}

// Delete removes a scout's saved search by ID. Returns false when no row
// matched, including searches owned by someone else.
func (r *SavedSearchRepo) Delete(ctx context.Context, scoutID, id string) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1 AND scout_id = $2`, id, scoutID)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved search: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
