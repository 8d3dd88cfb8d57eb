package demo

import (
	"time"

	"ghostboard/internal/reports"
)

// Source adapts the package-level dataset to the report handler's fallback
// contract.
type Source struct{}

func (Source) RecentReports() []reports.Report {
	return RecentReports()
}

func (Source) Acknowledge(draft reports.Draft, now time.Time) reports.Report {
	return Acknowledge(draft, now)
}
