// Package postgres provides pgx-backed repositories for profiles,
// favorites, scouting reports, saved searches and player stat documents.
package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Shared sentinel errors for the postgres repositories.
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrReportNotFound      = errors.New("report not found")
	ErrPlayerStatsNotFound = errors.New("player stats not found")

	// ErrDuplicateFavorite is returned when a scout favorites the same
	// player twice.
	ErrDuplicateFavorite = errors.New("player already favorited")
	// ErrSearchNameExists is returned when a scout reuses a saved-search name.
	ErrSearchNameExists = errors.New("saved search name already exists")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nowFunc lets tests pin the clock the repositories stamp rows with.
type nowFunc func() time.Time

func realNow() time.Time { return time.Now().UTC() }
