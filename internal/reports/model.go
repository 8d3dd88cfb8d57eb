package reports

import (
	"strings"
	"time"
)

// Outcome classifies how an application ended.
type Outcome string

const (
	OutcomeGhosted   Outcome = "ghosted"
	OutcomeRejected  Outcome = "rejected"
	OutcomeResponded Outcome = "responded"
	OutcomeOffer     Outcome = "offer"
)

// Valid reports whether o is one of the recognized outcome values.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeGhosted, OutcomeRejected, OutcomeResponded, OutcomeOffer:
		return true
	}
	return false
}

// Report is a single anonymously reported application outcome.
type Report struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	CompanySlug string    `json:"company_slug"`
	Position    string    `json:"position"`
	Outcome     Outcome   `json:"outcome"`
	DaysWaited  int       `json:"days_waited"`
	AppliedVia  string    `json:"applied_via"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompanyStats is the per-company aggregate computed over all reports
// sharing a slug. It is derived on every query and never persisted.
type CompanyStats struct {
	CompanyName    string  `json:"company_name"`
	CompanySlug    string  `json:"company_slug"`
	TotalReports   int     `json:"total_reports"`
	GhostedCount   int     `json:"ghosted_count"`
	GhostRate      float64 `json:"ghost_rate"`
	AvgWaitDays    int     `json:"avg_wait_days"`
	RespondedCount int     `json:"responded_count"`
	RejectedCount  int     `json:"rejected_count"`
	OfferCount     int     `json:"offer_count"`
}

// CommunityStats is the single global aggregate over all reports.
type CommunityStats struct {
	TotalReports     int     `json:"total_reports"`
	TotalCompanies   int     `json:"total_companies"`
	OverallGhostRate float64 `json:"overall_ghost_rate"`
	AvgWaitDays      int     `json:"avg_wait_days"`
}

// Draft is a validated submission before the store assigns identity.
type Draft struct {
	CompanyName string
	Position    string
	Outcome     Outcome
	DaysWaited  int
	AppliedVia  string
	Notes       string
}

// Normalize applies the schema defaults to a draft in place.
func (d *Draft) Normalize() {
	d.CompanyName = strings.TrimSpace(d.CompanyName)
	d.Position = strings.TrimSpace(d.Position)
	if d.DaysWaited < 0 {
		d.DaysWaited = 0
	}
	if strings.TrimSpace(d.AppliedVia) == "" {
		d.AppliedVia = "website"
	}
}

// Validate checks the required fields and the outcome enumeration.
// Field presence is checked before outcome validity so that a submission
// missing everything reports the missing fields, not the empty outcome.
func (d Draft) Validate() error {
	if d.CompanyName == "" || d.Position == "" || d.Outcome == "" {
		return ErrMissingFields
	}
	if !d.Outcome.Valid() {
		return ErrInvalidOutcome
	}
	return nil
}
