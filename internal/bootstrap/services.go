package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pitchscout/scout-ui-api/config"
	"github.com/pitchscout/scout-ui-api/internal/adapters/postgres"
	"github.com/pitchscout/scout-ui-api/internal/service"
)

// ServiceContainer holds the application services built from configuration.
type ServiceContainer struct {
	Auth       *service.AuthService
	Scout      *service.ScoutService
	Search     *service.SearchService
	Dashboards *service.DashboardService
	Reaper     *service.ReaperService
}

// ServicesConfig contains the dependencies for building the service container.
type ServicesConfig struct {
	Config      *config.AppConfig
	Pool        *pgxpool.Pool
	RedisClient *redis.Client
	Logger      *slog.Logger
}

// BuildServices wires repositories and services from configuration.
func BuildServices(cfg ServicesConfig) (ServiceContainer, error) {
	if cfg.Config == nil {
		return ServiceContainer{}, fmt.Errorf("app config is required")
	}
	if cfg.Pool == nil {
		return ServiceContainer{}, fmt.Errorf("database pool is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	profiles := postgres.NewProfileRepo(cfg.Pool)
	favorites := postgres.NewFavoriteRepo(cfg.Pool)
	reports := postgres.NewReportRepo(cfg.Pool)
	searches := postgres.NewSavedSearchRepo(cfg.Pool)
	stats := postgres.NewPlayerStatsRepo(cfg.Pool)

	container := ServiceContainer{
		Auth: BuildAuthService(AuthConfig{
			Auth:        cfg.Config.Auth,
			RedisClient: cfg.RedisClient,
			Users:       profiles,
			Logger:      logger,
		}),
		Scout: service.NewScoutService(service.ScoutServiceOptions{
			Favorites: favorites,
			Reports:   reports,
		}),
		Search: service.NewSearchService(service.SearchServiceOptions{
			Searches: searches,
			Stats:    stats,
		}),
		Dashboards: service.NewDashboardService(service.DashboardServiceOptions{
			Users:     profiles,
			Favorites: favorites,
			Reports:   reports,
			Searches:  searches,
			Stats:     stats,
		}),
	}

	if cfg.Config.IsReaperEnabled() {
		reaper, err := service.NewReaperService(service.ReaperServiceOptions{
			Reports:         reports,
			Logger:          logger,
			Interval:        cfg.Config.Reaper.Interval,
			DraftMaxAgeDays: cfg.Config.Reaper.DraftMaxAgeDays,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build reaper service: %w", err)
		}
		container.Reaper = reaper
	}

	return container, nil
}
