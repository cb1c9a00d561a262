package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

// PlayerStatsRepo serves denormalized stat documents synced from the
// statistics backend. Documents are stored as JSONB and treated as opaque
// apart from the identifying columns.
type PlayerStatsRepo struct {
	pool *pgxpool.Pool
	now  nowFunc
}

// NewPlayerStatsRepo creates a PlayerStatsRepo backed by the given pool.
func NewPlayerStatsRepo(pool *pgxpool.Pool) *PlayerStatsRepo {
	return &PlayerStatsRepo{pool: pool, now: realNow}
}

// GetByPlayerID retrieves one player's stat document.
func (r *PlayerStatsRepo) GetByPlayerID(ctx context.Context, playerID string) (*model.PlayerStats, error) {
	var ps model.PlayerStats
	var doc []byte
	err := r.pool.QueryRow(ctx, `
		SELECT player_id, name, document
		FROM player_stats
		WHERE player_id = $1`, playerID,
	).Scan(&ps.PlayerID, &ps.Name, &doc)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrPlayerStatsNotFound
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	ps.Document = json.RawMessage(doc)
	return &ps, nil
}

// List retrieves stat documents with pagination, ordered by player name.
func (r *PlayerStatsRepo) List(ctx context.Context, limit, offset int) ([]*model.PlayerStats, error) {
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT player_id, name, document
		FROM player_stats
		ORDER BY name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}
	defer rows.Close()

	var res []*model.PlayerStats
	for rows.Next() {
		var ps model.PlayerStats
		var doc []byte
		if scanErr := rows.Scan(&ps.PlayerID, &ps.Name, &doc); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", scanErr)
		}
		ps.Document = json.RawMessage(doc)
		res = append(res, &ps)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", rows.Err())
	}
	return res, nil
}

// Upsert inserts or replaces a player's stat document.
func (r *PlayerStatsRepo) Upsert(ctx context.Context, ps *model.PlayerStats) error {
	if ps == nil {
		return errors.New("player stats is required")
	}
	if ps.PlayerID == "" {
		return errors.New("player_id is required")
	}
	doc := ps.Document
	if len(doc) == 0 {
		doc = json.RawMessage(`{}`)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO player_stats (player_id, name, document, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE SET
			name = EXCLUDED.name,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at`,
		ps.PlayerID, ps.Name, []byte(doc), r.now())
	if err != nil {
		return fmt.Errorf("failed to upsert player stats: %w", err)
	}
	return nil
}

// Count returns the number of stored stat documents.
func (r *PlayerStatsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_stats`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count player stats: %w", err)
	}
	return n, nil
}
