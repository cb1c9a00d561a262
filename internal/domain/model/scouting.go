//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxReportTitleLen = 255
	maxSearchNameLen  = 120
)

// ReportStatus tracks a scouting report through its lifecycle.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
)

// Favorite is a player shortlisted by a scout.
type Favorite struct {
	ID        string    `json:"id"         db:"id"`
	ScoutID   string    `json:"scout_id"   db:"scout_id"`
	PlayerID  string    `json:"player_id"  db:"player_id"`
	Note      string    `json:"note"       db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Validate checks required favorite fields.
func (f *Favorite) Validate() error {
	if strings.TrimSpace(f.ScoutID) == "" {
		return errors.New("scout_id is required")
	}
	if strings.TrimSpace(f.PlayerID) == "" {
		return errors.New("player_id is required")
	}
	return nil
}

// Report is a scouting report on a player, optionally linking highlight
// footage hosted on an allowlisted video platform.
type Report struct {
	ID           string       `json:"id"            db:"id"`
	ScoutID      string       `json:"scout_id"      db:"scout_id"`
	PlayerID     string       `json:"player_id"     db:"player_id"`
	Title        string       `json:"title"         db:"title"`
	Body         string       `json:"body"          db:"body"`
	HighlightURL string       `json:"highlight_url" db:"highlight_url"`
	Status       ReportStatus `json:"status"        db:"status"`
	CreatedAt    time.Time    `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"    db:"updated_at"`
}

// Validate checks required report fields.
func (r *Report) Validate() error {
	if strings.TrimSpace(r.ScoutID) == "" {
		return errors.New("scout_id is required")
	}
	if strings.TrimSpace(r.PlayerID) == "" {
		return errors.New("player_id is required")
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > maxReportTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	switch r.Status {
	case ReportStatusDraft, ReportStatusSubmitted:
	default:
		return errors.New("status must be draft or submitted")
	}
	return nil
}

// SavedSearch is a named filter a scout keeps for re-running against player
// stat documents. Expression is a JMESPath expression; it is validated at
// creation time so a bad expression fails fast, not on first run.
type SavedSearch struct {
	ID         string    `json:"id"         db:"id"`
	ScoutID    string    `json:"scout_id"   db:"scout_id"`
	Name       string    `json:"name"       db:"name"`
	Expression string    `json:"expression" db:"expression"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Validate checks required saved-search fields. Expression syntax is
// validated by the search service, which owns the filter engine.
func (s *SavedSearch) Validate() error {
	if strings.TrimSpace(s.ScoutID) == "" {
		return errors.New("scout_id is required")
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(name) > maxSearchNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	if strings.TrimSpace(s.Expression) == "" {
		return errors.New("expression is required")
	}
	return nil
}

// PlayerStats is the denormalized stat document for one player as served by
// the statistics backend. The UI treats it as opaque JSON apart from the
// identifying fields; saved searches filter over the raw document.
type PlayerStats struct {
	PlayerID string          `json:"player_id"`
	Name     string          `json:"name"`
	Document json.RawMessage `json:"document"`
}
