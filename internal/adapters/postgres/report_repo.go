package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
)

const reportColumns = `id, scout_id, player_id, title, body, highlight_url, status, created_at, updated_at`

// ReportRepo persists scouting reports.
type ReportRepo struct {
	pool *pgxpool.Pool
	now  nowFunc
}

// NewReportRepo creates a ReportRepo backed by the given pool.
func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool, now: realNow}
}

// Create inserts a report and fills in the generated ID and timestamps.
func (r *ReportRepo) Create(ctx context.Context, rep *model.Report) error {
	if rep == nil {
		return errors.New("report is required")
	}
	if rep.Status == "" {
		rep.Status = model.ReportStatusDraft
	}
	if err := rep.Validate(); err != nil {
		return err
	}

	now := r.now()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO reports (scout_id, player_id, title, body, highlight_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at`,
		rep.ScoutID, rep.PlayerID, rep.Title, rep.Body, rep.HighlightURL, rep.Status, now,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by ID.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer rows.Close()

	rep, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Report])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &rep, nil
}

// ListByScout retrieves a scout's reports with pagination, newest first.
func (r *ReportRepo) ListByScout(ctx context.Context, scoutID string, limit, offset int) ([]*model.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE scout_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`, scoutID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Report])
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	res := make([]*model.Report, len(out))
	for i := range out {
		res[i] = &out[i]
	}
	return res, nil
}

// Update rewrites the mutable report fields and bumps updated_at.
func (r *ReportRepo) Update(ctx context.Context, rep *model.Report) error {
	if rep == nil {
		return errors.New("report is required")
	}
	if err := rep.Validate(); err != nil {
		return err
	}

	now := r.now()
	err := r.pool.QueryRow(ctx, `
		UPDATE reports
		SET title = $1, body = $2, highlight_url = $3, status = $4, updated_at = $5
		WHERE id = $6
		RETURNING updated_at`,
		rep.Title, rep.Body, rep.HighlightURL, rep.Status, now, rep.ID,
	).Scan(&rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReportNotFound
		}
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

// Delete removes a report by ID. Returns false when no row matched.
func (r *ReportRepo) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteDraftsOlderThan removes draft reports untouched for the given number
// of days. The reaper calls this on a schedule.
func (r *ReportRepo) DeleteDraftsOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be positive")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM reports
		WHERE status = $1 AND updated_at < $2 - make_interval(days => $3)`,
		model.ReportStatusDraft, r.now(), days)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale drafts: %w", err)
	}
	return ct.RowsAffected(), nil
}
