// Package devseed populates a development database with a small roster of
// profiles, player stat documents, and scout artifacts so the UI has data to
// render on first boot. Seeding is idempotent: existing rows are left alone
// or upserted.
package devseed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/adapters/postgres"
	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	Profiles  ports.UserRepository
	Favorites ports.FavoriteRepository
	Reports   ports.ReportRepository
	Searches  ports.SavedSearchRepository
	Stats     ports.PlayerStatsRepository
}

// NewServices constructs the seeding repositories from a database pool.
func NewServices(pool *pgxpool.Pool) Services {
	return Services{
		Profiles:  postgres.NewProfileRepo(pool),
		Favorites: postgres.NewFavoriteRepo(pool),
		Reports:   postgres.NewReportRepo(pool),
		Searches:  postgres.NewSavedSearchRepo(pool),
		Stats:     postgres.NewPlayerStatsRepo(pool),
	}
}

const seedScoutID = "seed-scout"

// Run executes the full development seeding workflow.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedProfiles(ctx, svcs.Profiles, logger); err != nil {
		return fmt.Errorf("seed profiles: %w", err)
	}
	if err := seedPlayerStats(ctx, svcs.Stats, logger); err != nil {
		return fmt.Errorf("seed player stats: %w", err)
	}
	if err := seedScoutArtifacts(ctx, svcs, logger); err != nil {
		return fmt.Errorf("seed scout artifacts: %w", err)
	}

	logger.InfoContext(ctx, "development seed complete")
	return nil
}

func seedProfiles(ctx context.Context, repo ports.UserRepository, logger *slog.Logger) error {
	profiles := []model.Profile{
		{ID: "seed-admin", Email: "admin@pitchscout.local", RawRole: "admin", FirstName: "Ada", LastName: "Keeper"},
		{ID: seedScoutID, Email: "scout@pitchscout.local", RawRole: "scout", FirstName: "Sam", LastName: "Eyes"},
		// Legacy raw role on purpose so the mapping path gets exercised in dev.
		{ID: "seed-legacy-scout", Email: "legacy@pitchscout.local", RawRole: "subscriber", FirstName: "Lena", LastName: "Vintage"},
		{ID: "seed-player", Email: "player@pitchscout.local", RawRole: "player", FirstName: "Pau", LastName: "Nine"},
	}

	for i := range profiles {
		if err := repo.Upsert(ctx, &profiles[i]); err != nil {
			return err
		}
	}
	logger.InfoContext(ctx, "seeded profiles", "count", len(profiles))
	return nil
}

type seedPlayer struct {
	ID       string
	Name     string
	Document string
}

func seedPlayers() []seedPlayer {
	return []seedPlayer{
		{
			ID:   "seed-player",
			Name: "Pau Nine",
			Document: `{"position":"striker","age":21,"foot":"left",
				"season":{"appearances":28,"goals":17,"assists":4,"minutes":2310}}`,
		},
		{
			ID:   "seed-player-keeper",
			Name: "Iker Wall",
			Document: `{"position":"goalkeeper","age":27,"foot":"right",
				"season":{"appearances":30,"clean_sheets":12,"saves":98,"minutes":2700}}`,
		},
		{
			ID:   "seed-player-wing",
			Name: "Nico Flank",
			Document: `{"position":"winger","age":19,"foot":"right",
				"season":{"appearances":25,"goals":6,"assists":11,"minutes":1840}}`,
		},
	}
}

func seedPlayerStats(ctx context.Context, repo ports.PlayerStatsRepository, logger *slog.Logger) error {
	players := seedPlayers()
	for _, p := range players {
		if !json.Valid([]byte(p.Document)) {
			return fmt.Errorf("seed document for %s is not valid JSON", p.ID)
		}
		ps := &model.PlayerStats{
			PlayerID: p.ID,
			Name:     p.Name,
			Document: json.RawMessage(p.Document),
		}
		if err := repo.Upsert(ctx, ps); err != nil {
			return err
		}
	}
	logger.InfoContext(ctx, "seeded player stats", "count", len(players))
	return nil
}

func seedScoutArtifacts(ctx context.Context, svcs Services, logger *slog.Logger) error {
	fav := &model.Favorite{
		ScoutID:  seedScoutID,
		PlayerID: "seed-player",
		Note:     "Clinical finisher, track through the winter window.",
	}
	if err := svcs.Favorites.Add(ctx, fav); err != nil && !errors.Is(err, postgres.ErrDuplicateFavorite) {
		return err
	}

	reports, err := svcs.Reports.ListByScout(ctx, seedScoutID, 1, 0)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		report := &model.Report{
			ScoutID:      seedScoutID,
			PlayerID:     "seed-player",
			Title:        "First look: Pau Nine",
			Body:         "Strong movement in the box, needs work on hold-up play.",
			HighlightURL: "https://youtube.com/watch?v=seed-highlight",
			Status:       model.ReportStatusDraft,
		}
		if createErr := svcs.Reports.Create(ctx, report); createErr != nil {
			return createErr
		}
	}

	search := &model.SavedSearch{
		ScoutID:    seedScoutID,
		Name:       "Young goal threats",
		Expression: "[?age < `22` && season.goals > `5`]",
	}
	if err := svcs.Searches.Create(ctx, search); err != nil && !errors.Is(err, postgres.ErrSearchNameExists) {
		return err
	}

	logger.InfoContext(ctx, "seeded scout artifacts", "scout_id", seedScoutID)
	return nil
}
