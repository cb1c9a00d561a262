package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteValidate(t *testing.T) {
	f := Favorite{ScoutID: "s1", PlayerID: "p1"}
	assert.NoError(t, f.Validate())

	f = Favorite{PlayerID: "p1"}
	assert.Error(t, f.Validate())

	f = Favorite{ScoutID: "s1", PlayerID: "  "}
	assert.Error(t, f.Validate())
}

func TestReportValidate(t *testing.T) {
	r := Report{ScoutID: "s1", PlayerID: "p1", Title: "First look", Status: ReportStatusDraft}
	assert.NoError(t, r.Validate())

	r.Status = ReportStatusSubmitted
	assert.NoError(t, r.Validate())

	r.Status = "archived"
	assert.Error(t, r.Validate())

	r = Report{ScoutID: "s1", PlayerID: "p1", Title: "   ", Status: ReportStatusDraft}
	assert.Error(t, r.Validate())

	r = Report{ScoutID: "s1", PlayerID: "p1", Title: strings.Repeat("x", 256), Status: ReportStatusDraft}
	assert.Error(t, r.Validate())
}

func TestSavedSearchValidate(t *testing.T) {
	s := SavedSearch{ScoutID: "s1", Name: "Young strikers", Expression: "[?age < `21`]"}
	assert.NoError(t, s.Validate())

	s.Expression = ""
	assert.Error(t, s.Validate())

	s = SavedSearch{ScoutID: "s1", Name: strings.Repeat("n", 121), Expression: "[]"}
	assert.Error(t, s.Validate())

	s = SavedSearch{Name: "No owner", Expression: "[]"}
	assert.Error(t, s.Validate())
}

func TestProfileDisplayName(t *testing.T) {
	p := Profile{Email: "sam.eyes@club.example", FirstName: "Sam", LastName: "Eyes"}
	assert.Equal(t, "Sam Eyes", p.DisplayName())

	p = Profile{Email: "sam.eyes@club.example"}
	assert.Equal(t, "sam.eyes", p.DisplayName())

	p = Profile{Email: "@club.example"}
	assert.Equal(t, "@club.example", p.DisplayName())
}

func TestProfileValidate(t *testing.T) {
	p := Profile{ID: "u1", Email: "u@example.com"}
	assert.NoError(t, p.Validate())

	assert.Error(t, (&Profile{Email: "u@example.com"}).Validate())
	assert.Error(t, (&Profile{ID: "u1"}).Validate())
}
