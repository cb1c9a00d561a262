package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/migrate"
	"github.com/pitchscout/scout-ui-api/internal/testutil"
)

// setupDB connects to the test database and applies migrations. Tests use
// generated scout IDs so runs do not interfere with each other.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool := testutil.SetupTestPool(t)
	require.NoError(t, migrate.Run(context.Background(), pool))
	return pool
}

func TestProfileRepo_Integration_UpsertAndGet(t *testing.T) {
	pool := setupDB(t)
	repo := NewProfileRepo(pool)
	ctx := context.Background()

	id := "user-" + uuid.NewString()
	p := &model.Profile{
		ID:        id,
		Email:     "scout@example.com",
		RawRole:   "subscriber",
		FirstName: "Ada",
		LastName:  "Okafor",
	}
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "subscriber", got.RawRole)
	assert.Equal(t, "Ada Okafor", got.DisplayName())

	// Second upsert refreshes the snapshot in place.
	p.RawRole = "scout"
	p.FirstName = "Adaeze"
	require.NoError(t, repo.Upsert(ctx, p))

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "scout", got.RawRole)
	assert.Equal(t, "Adaeze", got.FirstName)
}

func TestProfileRepo_Integration_NotFound(t *testing.T) {
	pool := setupDB(t)
	repo := NewProfileRepo(pool)

	_, err := repo.GetByID(context.Background(), "user-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFavoriteRepo_Integration(t *testing.T) {
	pool := setupDB(t)
	repo := NewFavoriteRepo(pool)
	ctx := context.Background()
	scoutID := "scout-" + uuid.NewString()

	fav := &model.Favorite{ScoutID: scoutID, PlayerID: "player-9", Note: "quick feet"}
	require.NoError(t, repo.Add(ctx, fav))
	assert.NotEmpty(t, fav.ID)
	assert.False(t, fav.CreatedAt.IsZero())

	// Duplicate shortlisting maps to the sentinel, not a raw pg error.
	dup := &model.Favorite{ScoutID: scoutID, PlayerID: "player-9"}
	assert.ErrorIs(t, repo.Add(ctx, dup), ErrDuplicateFavorite)

	require.NoError(t, repo.Add(ctx, &model.Favorite{ScoutID: scoutID, PlayerID: "player-10"}))

	list, err := repo.ListByScout(ctx, scoutID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	n, err := repo.CountByScout(ctx, scoutID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	removed, err := repo.Remove(ctx, scoutID, "player-9")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, scoutID, "player-9")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReportRepo_Integration_Lifecycle(t *testing.T) {
	pool := setupDB(t)
	repo := NewReportRepo(pool)
	ctx := context.Background()
	scoutID := "scout-" + uuid.NewString()

	rep := &model.Report{
		ScoutID:  scoutID,
		PlayerID: "player-7",
		Title:    "U19 winger assessment",
		Body:     "Strong off the ball.",
	}
	require.NoError(t, repo.Create(ctx, rep))
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, model.ReportStatusDraft, rep.Status, "status defaults to draft")

	rep.Status = model.ReportStatusSubmitted
	rep.Body = "Strong off the ball, needs work on crossing."
	require.NoError(t, repo.Update(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReportStatusSubmitted, got.Status)
	assert.Equal(t, rep.Body, got.Body)

	list, err := repo.ListByScout(ctx, scoutID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	ok, err := repo.Delete(ctx, rep.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, rep.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportRepo_Integration_DeleteDraftsOlderThan(t *testing.T) {
	pool := setupDB(t)
	repo := NewReportRepo(pool)
	repo.now = testutil.FixedTimeFunc(testutil.TestTime())
	ctx := context.Background()
	scoutID := "scout-" + uuid.NewString()

	stale := &model.Report{ScoutID: scoutID, PlayerID: "p1", Title: "stale draft"}
	require.NoError(t, repo.Create(ctx, stale))

	// Advance the repo clock 40 days and add a fresh draft plus a stale
	// submitted report; only the old draft should be reaped.
	later := testutil.TestTime().AddDate(0, 0, 40)
	repo.now = testutil.FixedTimeFunc(later)

	fresh := &model.Report{ScoutID: scoutID, PlayerID: "p2", Title: "fresh draft"}
	require.NoError(t, repo.Create(ctx, fresh))

	repo.now = testutil.FixedTimeFunc(testutil.TestTime())
	submitted := &model.Report{
		ScoutID: scoutID, PlayerID: "p3", Title: "old but submitted",
		Status: model.ReportStatusSubmitted,
	}
	require.NoError(t, repo.Create(ctx, submitted))

	repo.now = testutil.FixedTimeFunc(later)
	n, err := repo.DeleteDraftsOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	_, err = repo.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	_, err = repo.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = repo.GetByID(ctx, submitted.ID)
	assert.NoError(t, err)
}

func TestSavedSearchRepo_Integration(t *testing.T) {
	pool := setupDB(t)
	repo := NewSavedSearchRepo(pool)
	ctx := context.Background()
	scoutID := "scout-" + uuid.NewString()

	s := &model.SavedSearch{
		ScoutID:    scoutID,
		Name:       "fast U21 wingers",
		Expression: "[?age < `21` && top_speed_kmh > `32`]",
	}
	require.NoError(t, repo.Create(ctx, s))
	assert.NotEmpty(t, s.ID)

	dup := &model.SavedSearch{ScoutID: scoutID, Name: "fast U21 wingers", Expression: "@"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrSearchNameExists)

	list, err := repo.ListByScout(ctx, scoutID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.Expression, list[0].Expression)

	ok, err := repo.Delete(ctx, "someone-else", s.ID)
	require.NoError(t, err)
	assert.False(t, ok, "foreign scout must not delete the search")

	ok, err = repo.Delete(ctx, scoutID, s.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, scoutID, s.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlayerStatsRepo_Integration(t *testing.T) {
	pool := setupDB(t)
	repo := NewPlayerStatsRepo(pool)
	ctx := context.Background()
	playerID := "player-" + uuid.NewString()

	doc := json.RawMessage(`{"age": 19, "position": "LW", "top_speed_kmh": 33.4}`)
	require.NoError(t, repo.Upsert(ctx, &model.PlayerStats{
		PlayerID: playerID,
		Name:     "Test Winger",
		Document: doc,
	}))

	got, err := repo.GetByPlayerID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "Test Winger", got.Name)
	assert.JSONEq(t, string(doc), string(got.Document))

	// Replace the document wholesale.
	doc2 := json.RawMessage(`{"age": 20}`)
	require.NoError(t, repo.Upsert(ctx, &model.PlayerStats{
		PlayerID: playerID, Name: "Test Winger", Document: doc2,
	}))
	got, err = repo.GetByPlayerID(ctx, playerID)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc2), string(got.Document))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	_, err = repo.GetByPlayerID(ctx, "player-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrPlayerStatsNotFound)
}
