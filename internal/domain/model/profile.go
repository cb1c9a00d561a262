//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Profile is the locally cached snapshot of a platform user. It mirrors what
// the identity backend returned at last login/verify so dashboards and
// navigation can render without another round trip.
type Profile struct {
	ID                string    `json:"id"                  db:"id"`
	Email             string    `json:"email"               db:"email"`
	RawRole           string    `json:"role"                db:"role"`
	FirstName         string    `json:"first_name"          db:"first_name"`
	LastName          string    `json:"last_name"           db:"last_name"`
	ProfilePictureURL string    `json:"profile_picture_url" db:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"          db:"updated_at"`
}

// Validate checks the fields required to persist a profile snapshot.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}

// DisplayName returns "First Last" when available, falling back to the
// email's local part.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		return name
	}
	if at := strings.Index(p.Email, "@"); at > 0 {
		return p.Email[:at]
	}
	return p.Email
}
