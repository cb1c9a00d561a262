package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// ErrHighlightHostNotAllowed is returned when a report links footage on a
// host outside the allowlist.
var ErrHighlightHostNotAllowed = errors.New("highlight URL host is not allowlisted")

// DefaultHighlightHosts are the video platforms reports may link footage
// from, compared by registrable domain so subdomains pass.
var DefaultHighlightHosts = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
	"hudl.com",
	"veo.co",
}

// ScoutServiceOptions groups dependencies for ScoutService.
type ScoutServiceOptions struct {
	Favorites ports.FavoriteRepository
	Reports   ports.ReportRepository

	// HighlightHosts overrides DefaultHighlightHosts when non-nil.
	HighlightHosts []string
}

// ScoutService owns scout-facing workflows: shortlisting players and writing
// scouting reports.
type ScoutService struct {
	favorites      ports.FavoriteRepository
	reports        ports.ReportRepository
	highlightHosts map[string]struct{}
}

// NewScoutService constructs a new ScoutService.
func NewScoutService(opts ScoutServiceOptions) *ScoutService {
	hosts := opts.HighlightHosts
	if hosts == nil {
		hosts = DefaultHighlightHosts
	}
	allowed := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		allowed[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}
	return &ScoutService{
		favorites:      opts.Favorites,
		reports:        opts.Reports,
		highlightHosts: allowed,
	}
}

// AddFavorite shortlists a player for the scout.
func (s *ScoutService) AddFavorite(ctx context.Context, scoutID, playerID, note string) (*model.Favorite, error) {
	fav := &model.Favorite{ScoutID: scoutID, PlayerID: playerID, Note: note}
	if err := s.favorites.Add(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// RemoveFavorite drops a player from the scout's shortlist.
func (s *ScoutService) RemoveFavorite(ctx context.Context, scoutID, playerID string) (bool, error) {
	return s.favorites.Remove(ctx, scoutID, playerID)
}

// ListFavorites returns the scout's shortlist, newest first.
func (s *ScoutService) ListFavorites(ctx context.Context, scoutID string) ([]*model.Favorite, error) {
	return s.favorites.ListByScout(ctx, scoutID)
}

// CreateReportInput groups parameters for creating a report.
type CreateReportInput struct {
	ScoutID      string
	PlayerID     string
	Title        string
	Body         string
	HighlightURL string
	Submit       bool
}

// CreateReport validates and stores a scouting report. Reports start as
// drafts unless Submit is set.
func (s *ScoutService) CreateReport(ctx context.Context, input CreateReportInput) (*model.Report, error) {
	if err := s.checkHighlightURL(input.HighlightURL); err != nil {
		return nil, err
	}

	status := model.ReportStatusDraft
	if input.Submit {
		status = model.ReportStatusSubmitted
	}
	rep := &model.Report{
		ScoutID:      input.ScoutID,
		PlayerID:     input.PlayerID,
		Title:        strings.TrimSpace(input.Title),
		Body:         input.Body,
		HighlightURL: input.HighlightURL,
		Status:       status,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// UpdateReportInput groups parameters for updating a report. Nil fields are
// left unchanged.
type UpdateReportInput struct {
	Title        *string
	Body         *string
	HighlightURL *string
	Submit       bool
}

// UpdateReport applies the given changes to a scout's own report.
func (s *ScoutService) UpdateReport(ctx context.Context, scoutID, reportID string, input UpdateReportInput) (*model.Report, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep.ScoutID != scoutID {
		// Hide other scouts' reports rather than acknowledging them.
		return nil, errors.New("report not found")
	}

	if input.Title != nil {
		rep.Title = strings.TrimSpace(*input.Title)
	}
	if input.Body != nil {
		rep.Body = *input.Body
	}
	if input.HighlightURL != nil {
		if err := s.checkHighlightURL(*input.HighlightURL); err != nil {
			return nil, err
		}
		rep.HighlightURL = *input.HighlightURL
	}
	if input.Submit {
		rep.Status = model.ReportStatusSubmitted
	}

	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// ListReports returns the scout's reports with pagination.
func (s *ScoutService) ListReports(ctx context.Context, scoutID string, limit, offset int) ([]*model.Report, error) {
	return s.reports.ListByScout(ctx, scoutID, limit, offset)
}

// DeleteReport removes a scout's own report.
func (s *ScoutService) DeleteReport(ctx context.Context, scoutID, reportID string) (bool, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return false, err
	}
	if rep.ScoutID != scoutID {
		return false, nil
	}
	return s.reports.Delete(ctx, reportID)
}

// checkHighlightURL enforces the footage host allowlist. An empty URL is
// fine; reports do not have to link footage.
func (s *ScoutService) checkHighlightURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid highlight URL: %w", err)
	}
	if u.Scheme != "https" {
		return errors.New("highlight URL must use https")
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return errors.New("highlight URL must include a host")
	}

	// Compare by registrable domain so clips.youtube.com passes when
	// youtube.com is allowlisted.
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return fmt.Errorf("invalid highlight URL host: %w", err)
	}
	if _, ok := s.highlightHosts[domain]; !ok {
		return ErrHighlightHostNotAllowed
	}
	return nil
}
