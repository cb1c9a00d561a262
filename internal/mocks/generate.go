// Package mocks provides mock implementations for testing the scout UI services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/ports. The mocks are generated with
// go:generate directives and provide a fluent API for setting up expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockReportRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/pitchscout/scout-ui-api/internal/ports UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=favorite_repository_mock.go github.com/pitchscout/scout-ui-api/internal/ports FavoriteRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=report_repository_mock.go github.com/pitchscout/scout-ui-api/internal/ports ReportRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=saved_search_repository_mock.go github.com/pitchscout/scout-ui-api/internal/ports SavedSearchRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=player_stats_repository_mock.go github.com/pitchscout/scout-ui-api/internal/ports PlayerStatsRepository
