package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// recentReportsLimit bounds the report list on the scout dashboard.
const recentReportsLimit = 5

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Users     ports.UserRepository
	Favorites ports.FavoriteRepository
	Reports   ports.ReportRepository
	Searches  ports.SavedSearchRepository
	Stats     ports.PlayerStatsRepository
}

// DashboardService assembles the per-role landing pages. Each dashboard fans
// its queries out concurrently; one slow source should not serialize the
// page.
type DashboardService struct {
	users     ports.UserRepository
	favorites ports.FavoriteRepository
	reports   ports.ReportRepository
	searches  ports.SavedSearchRepository
	stats     ports.PlayerStatsRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		users:     opts.Users,
		favorites: opts.Favorites,
		reports:   opts.Reports,
		searches:  opts.Searches,
		stats:     opts.Stats,
	}
}

// ScoutDashboard is the scout's landing page data.
type ScoutDashboard struct {
	FavoriteCount int                  `json:"favorite_count"`
	RecentReports []*model.Report      `json:"recent_reports"`
	SavedSearches []*model.SavedSearch `json:"saved_searches"`
	PlayerPool    int                  `json:"player_pool"`
}

// ForScout loads the scout dashboard.
func (s *DashboardService) ForScout(ctx context.Context, scoutID string) (*ScoutDashboard, error) {
	if scoutID == "" {
		return nil, errors.New("scout ID is required")
	}

	var dash ScoutDashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.favorites.CountByScout(ctx, scoutID)
		dash.FavoriteCount = n
		return err
	})
	g.Go(func() error {
		reports, err := s.reports.ListByScout(ctx, scoutID, recentReportsLimit, 0)
		dash.RecentReports = reports
		return err
	})
	g.Go(func() error {
		searches, err := s.searches.ListByScout(ctx, scoutID)
		dash.SavedSearches = searches
		return err
	})
	g.Go(func() error {
		n, err := s.stats.Count(ctx)
		dash.PlayerPool = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// PlayerDashboard is the player's landing page data.
type PlayerDashboard struct {
	Profile *model.Profile     `json:"profile,omitempty"`
	Stats   *model.PlayerStats `json:"stats,omitempty"`
}

// ForPlayer loads the player dashboard. Missing profile or stats rows leave
// the section empty instead of failing the page.
func (s *DashboardService) ForPlayer(ctx context.Context, playerID string) (*PlayerDashboard, error) {
	if playerID == "" {
		return nil, errors.New("player ID is required")
	}

	var dash PlayerDashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.users.GetByID(ctx, playerID)
		if err == nil {
			dash.Profile = p
		}
		return nil
	})
	g.Go(func() error {
		ps, err := s.stats.GetByPlayerID(ctx, playerID)
		if err == nil {
			dash.Stats = ps
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// AdminDashboard is the admin's landing page data.
type AdminDashboard struct {
	PlayerPool int `json:"player_pool"`
}

// ForAdmin loads the admin dashboard.
func (s *DashboardService) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	n, err := s.stats.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{PlayerPool: n}, nil
}
