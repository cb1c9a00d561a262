package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pitchscout/scout-ui-api/internal/mocks"
)

func TestNewReaperService_RequiresRepo(t *testing.T) {
	_, err := NewReaperService(ReaperServiceOptions{})
	assert.Error(t, err)
}

func TestNewReaperService_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, err := NewReaperService(ReaperServiceOptions{
		Reports: mocks.NewMockReportRepository(ctrl),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.interval)
	assert.Equal(t, 30, svc.draftMaxAgeDays)
}

func TestReaperRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockReportRepository(ctrl)
	reports.EXPECT().DeleteDraftsOlderThan(gomock.Any(), 14).Return(int64(3), nil)

	svc, err := NewReaperService(ReaperServiceOptions{
		Reports:         reports,
		DraftMaxAgeDays: 14,
	})
	require.NoError(t, err)

	n, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReaperRun_StopsOnCancelAndCleansAtLeastOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockReportRepository(ctrl)
	reports.EXPECT().DeleteDraftsOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(1)

	svc, err := NewReaperService(ReaperServiceOptions{
		Reports:  reports,
		Interval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case runErr := <-done:
		assert.NoError(t, runErr, "graceful shutdown is not an error")
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancel")
	}
}

func TestReaperRun_SurvivesCleanupErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockReportRepository(ctrl)
	reports.EXPECT().DeleteDraftsOlderThan(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down")).MinTimes(2)

	svc, err := NewReaperService(ReaperServiceOptions{
		Reports:  reports,
		Interval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Cleanup failures are logged and the loop keeps ticking; only the
	// deadline stops it.
	runErr := svc.Run(ctx)
	assert.ErrorIs(t, runErr, context.DeadlineExceeded)
}
