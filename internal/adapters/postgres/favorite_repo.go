package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

const favoriteColumns = `id, scout_id, player_id, note, created_at`

// FavoriteRepo persists a scout's shortlisted players. The (scout_id,
// player_id) pair is unique, so favoriting twice is a conflict, not a
// second row.
type FavoriteRepo struct {
	pool *pgxpool.Pool
	now  nowFunc
}

// NewFavoriteRepo creates a FavoriteRepo backed by the given pool.
func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool, now: realNow}
}

// Add inserts a favorite and fills in the generated ID and timestamp.
func (r *FavoriteRepo) Add(ctx context.Context, f *model.Favorite) error {
	if f == nil {
		return errors.New("favorite is required")
	}
	if err := f.Validate(); err != nil {
		return err
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO favorites (scout_id, player_id, note, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		f.ScoutID, f.PlayerID, f.Note, r.now(),
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateFavorite
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes a favorite by scout and player. Returns false when no row
// matched.
func (r *FavoriteRepo) Remove(ctx context.Context, scoutID, playerID string) (bool, error) {
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE scout_id = $1 AND player_id = $2`,
		scoutID, playerID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListByScout retrieves a scout's favorites, newest first.
func (r *FavoriteRepo) ListByScout(ctx context.Context, scoutID string) ([]*model.Favorite, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+favoriteColumns+`
		FROM favorites
		WHERE scout_id = $1
		ORDER BY created_at DESC`, scoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Favorite])
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	res := make([]*model.Favorite, len(out))
	for i := range out {
		res[i] = &out[i]
	}
	return res, nil
}

// CountByScout returns how many players a scout has shortlisted.
func (r *FavoriteRepo) CountByScout(ctx context.Context, scoutID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM favorites WHERE scout_id = $1`, scoutID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return n, nil
}
