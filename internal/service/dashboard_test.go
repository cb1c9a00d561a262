package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pitchscout/scout-ui-api/internal/adapters/postgres"
	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/mocks"
)

func newDashboardMocks(ctrl *gomock.Controller) (*mocks.MockUserRepository, *mocks.MockFavoriteRepository, *mocks.MockReportRepository, *mocks.MockSavedSearchRepository, *mocks.MockPlayerStatsRepository) {
	return mocks.NewMockUserRepository(ctrl),
		mocks.NewMockFavoriteRepository(ctrl),
		mocks.NewMockReportRepository(ctrl),
		mocks.NewMockSavedSearchRepository(ctrl),
		mocks.NewMockPlayerStatsRepository(ctrl)
}

func TestForScout_FansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users, favorites, reports, searches, stats := newDashboardMocks(ctrl)
	favorites.EXPECT().CountByScout(gomock.Any(), "scout-1").Return(4, nil)
	reports.EXPECT().ListByScout(gomock.Any(), "scout-1", recentReportsLimit, 0).
		Return([]*model.Report{{ID: "r1"}}, nil)
	searches.EXPECT().ListByScout(gomock.Any(), "scout-1").
		Return([]*model.SavedSearch{{ID: "s1"}}, nil)
	stats.EXPECT().Count(gomock.Any()).Return(1200, nil)

	svc := NewDashboardService(DashboardServiceOptions{
		Users: users, Favorites: favorites, Reports: reports, Searches: searches, Stats: stats,
	})

	dash, err := svc.ForScout(context.Background(), "scout-1")
	require.NoError(t, err)
	assert.Equal(t, 4, dash.FavoriteCount)
	assert.Len(t, dash.RecentReports, 1)
	assert.Len(t, dash.SavedSearches, 1)
	assert.Equal(t, 1200, dash.PlayerPool)
}

func TestForScout_OneFailingSourceFailsThePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users, favorites, reports, searches, stats := newDashboardMocks(ctrl)
	favorites.EXPECT().CountByScout(gomock.Any(), "scout-1").Return(0, errors.New("redis down")).AnyTimes()
	reports.EXPECT().ListByScout(gomock.Any(), "scout-1", gomock.Any(), 0).Return(nil, nil).AnyTimes()
	searches.EXPECT().ListByScout(gomock.Any(), "scout-1").Return(nil, nil).AnyTimes()
	stats.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()

	svc := NewDashboardService(DashboardServiceOptions{
		Users: users, Favorites: favorites, Reports: reports, Searches: searches, Stats: stats,
	})

	_, err := svc.ForScout(context.Background(), "scout-1")
	assert.Error(t, err)
}

func TestForPlayer_MissingRowsLeaveSectionsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users, favorites, reports, searches, stats := newDashboardMocks(ctrl)
	users.EXPECT().GetByID(gomock.Any(), "player-1").Return(nil, postgres.ErrProfileNotFound)
	stats.EXPECT().GetByPlayerID(gomock.Any(), "player-1").Return(nil, postgres.ErrPlayerStatsNotFound)

	svc := NewDashboardService(DashboardServiceOptions{
		Users: users, Favorites: favorites, Reports: reports, Searches: searches, Stats: stats,
	})

	dash, err := svc.ForPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Nil(t, dash.Profile)
	assert.Nil(t, dash.Stats)
}

func TestForPlayer_PopulatedSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users, favorites, reports, searches, stats := newDashboardMocks(ctrl)
	users.EXPECT().GetByID(gomock.Any(), "player-1").
		Return(&model.Profile{ID: "player-1", Email: "p@example.com"}, nil)
	stats.EXPECT().GetByPlayerID(gomock.Any(), "player-1").
		Return(&model.PlayerStats{PlayerID: "player-1", Name: "P One"}, nil)

	svc := NewDashboardService(DashboardServiceOptions{
		Users: users, Favorites: favorites, Reports: reports, Searches: searches, Stats: stats,
	})

	dash, err := svc.ForPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	require.NotNil(t, dash.Profile)
	require.NotNil(t, dash.Stats)
	assert.Equal(t, "P One", dash.Stats.Name)
}

func TestForAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users, favorites, reports, searches, stats := newDashboardMocks(ctrl)
	stats.EXPECT().Count(gomock.Any()).Return(42, nil)

	svc := NewDashboardService(DashboardServiceOptions{
		Users: users, Favorites: favorites, Reports: reports, Searches: searches, Stats: stats,
	})

	dash, err := svc.ForAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, dash.PlayerPool)
}
