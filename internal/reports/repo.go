package reports

import (
	"context"
	"errors"
)

var (
	// ErrMissingFields rejects a submission lacking company name, position or outcome.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidOutcome rejects a submission whose outcome is not in the enumeration.
	ErrInvalidOutcome = errors.New("invalid outcome")
	// ErrNotFound reports an unknown company slug.
	ErrNotFound = errors.New("company not found")
)

// leaderboardMinReports is the minimum sample size for leaderboard inclusion.
// Single-company lookup and search carry no such floor: a company page must
// be viewable with one report.
const leaderboardMinReports = 3

// Store is the append-only collection of outcome reports. Reports are never
// updated or deleted.
type Store interface {
	Insert(ctx context.Context, draft Draft) (Report, error)
	Recent(ctx context.Context, limit int) ([]Report, error)
	ForCompany(ctx context.Context, slug string, limit int) ([]Report, error)
}

// Aggregator computes company and community statistics fresh on every call.
type Aggregator interface {
	Leaderboard(ctx context.Context, limit int) ([]CompanyStats, error)
	Search(ctx context.Context, query string, limit int) ([]CompanyStats, error)
	CompanyBySlug(ctx context.Context, slug string) (CompanyStats, error)
	CommunityStats(ctx context.Context) (CommunityStats, error)
}

// Repo combines the store and aggregation contracts. Both the Postgres and
// the in-memory backend implement it.
type Repo interface {
	Store
	Aggregator
}
