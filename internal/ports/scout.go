package ports

import (
	"context"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

// UserRepository stores profile snapshots for known users so dashboards can
// render without a round trip to the identity backend.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
}

// FavoriteRepository stores a scout's shortlisted players.
type FavoriteRepository interface {
	Add(ctx context.Context, f *model.Favorite) error
	Remove(ctx context.Context, scoutID, playerID string) (bool, error)
	ListByScout(ctx context.Context, scoutID string) ([]*model.Favorite, error)
	CountByScout(ctx context.Context, scoutID string) (int, error)
}

// ReportRepository stores scouting reports.
type ReportRepository interface {
	Create(ctx context.Context, r *model.Report) error
	GetByID(ctx context.Context, id string) (*model.Report, error)
	ListByScout(ctx context.Context, scoutID string, limit, offset int) ([]*model.Report, error)
	Update(ctx context.Context, r *model.Report) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteDraftsOlderThan(ctx context.Context, days int) (int64, error)
}

// SavedSearchRepository stores scout saved searches (name + filter
// expression evaluated against player stat documents).
type SavedSearchRepository interface {
	Create(ctx context.Context, s *model.SavedSearch) error
	ListByScout(ctx context.Context, scoutID string) ([]*model.SavedSearch, error)
	Delete(ctx context.Context, scoutID, id string) (bool, error)
}

// PlayerStatsRepository serves denormalized player stat documents. The
// search service filters these; dashboards read them directly.
type PlayerStatsRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (*model.PlayerStats, error)
	List(ctx context.Context, limit, offset int) ([]*model.PlayerStats, error)
	Upsert(ctx context.Context, ps *model.PlayerStats) error
	Count(ctx context.Context) (int, error)
}
