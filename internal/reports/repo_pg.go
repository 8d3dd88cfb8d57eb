package reports

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. Aggregates are computed by the
// database itself; nothing is materialized.
type PGRepo struct {
	DB *sql.DB
}

const reportColumns = `id, company_name, company_slug, position, outcome, days_waited, applied_via, notes, created_at`

// statsColumns projects a group of reports onto CompanyStats. Groups are
// keyed by slug alone: distinct display names sharing a slug are one
// company, and the alphabetically first name represents it.
const statsColumns = `
MIN(company_name) AS company_name,
company_slug,
COUNT(*) AS total_reports,
SUM(CASE WHEN outcome = 'ghosted' THEN 1 ELSE 0 END) AS ghosted_count,
ROUND(SUM(CASE WHEN outcome = 'ghosted' THEN 1 ELSE 0 END)::numeric / COUNT(*)::numeric * 100, 1) AS ghost_rate,
ROUND(AVG(days_waited), 0) AS avg_wait_days,
SUM(CASE WHEN outcome = 'responded' THEN 1 ELSE 0 END) AS responded_count,
SUM(CASE WHEN outcome = 'rejected' THEN 1 ELSE 0 END) AS rejected_count,
SUM(CASE WHEN outcome = 'offer' THEN 1 ELSE 0 END) AS offer_count`

// Insert persists a validated draft and returns the stored report.
func (r *PGRepo) Insert(ctx context.Context, draft Draft) (Report, error) {
	const query = `
INSERT INTO company_reports (company_name, company_slug, position, outcome, days_waited, applied_via, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + reportColumns

	row := r.DB.QueryRowContext(ctx, query,
		draft.CompanyName,
		Slugify(draft.CompanyName),
		draft.Position,
		string(draft.Outcome),
		draft.DaysWaited,
		draft.AppliedVia,
		draft.Notes,
	)
	return scanReport(row)
}

// Recent returns the newest reports across all companies.
func (r *PGRepo) Recent(ctx context.Context, limit int) ([]Report, error) {
	const query = `
SELECT ` + reportColumns + `
FROM company_reports
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// ForCompany returns the newest reports for one slug.
func (r *PGRepo) ForCompany(ctx context.Context, slug string, limit int) ([]Report, error) {
	const query = `
SELECT ` + reportColumns + `
FROM company_reports
WHERE company_slug = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, slug, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// Leaderboard ranks companies by ghost rate, requiring the minimum sample size.
func (r *PGRepo) Leaderboard(ctx context.Context, limit int) ([]CompanyStats, error) {
	const query = `
SELECT ` + statsColumns + `
FROM company_reports
GROUP BY company_slug
HAVING COUNT(*) >= 3
ORDER BY ghost_rate DESC, total_reports DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStats(rows)
}

// Search matches the query case-insensitively against company names. No
// minimum sample size applies here.
func (r *PGRepo) Search(ctx context.Context, query string, limit int) ([]CompanyStats, error) {
	const q = `
SELECT ` + statsColumns + `
FROM company_reports
WHERE company_name ILIKE $1
GROUP BY company_slug
ORDER BY total_reports DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStats(rows)
}

// CompanyBySlug computes the aggregate for exactly one company.
func (r *PGRepo) CompanyBySlug(ctx context.Context, slug string) (CompanyStats, error) {
	const query = `
SELECT ` + statsColumns + `
FROM company_reports
WHERE company_slug = $1
GROUP BY company_slug`

	row := r.DB.QueryRowContext(ctx, query, slug)
	stats, err := scanStats(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompanyStats{}, ErrNotFound
		}
		return CompanyStats{}, err
	}
	return stats, nil
}

// CommunityStats computes the global aggregate. With zero reports every
// field is zero, never an error.
func (r *PGRepo) CommunityStats(ctx context.Context) (CommunityStats, error) {
	const query = `
SELECT
    COUNT(*) AS total_reports,
    COUNT(DISTINCT company_slug) AS total_companies,
    COALESCE(ROUND(SUM(CASE WHEN outcome = 'ghosted' THEN 1 ELSE 0 END)::numeric / NULLIF(COUNT(*), 0)::numeric * 100, 1), 0) AS overall_ghost_rate,
    COALESCE(ROUND(AVG(days_waited), 0), 0) AS avg_wait_days
FROM company_reports`

	var stats CommunityStats
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalReports,
		&stats.TotalCompanies,
		&stats.OverallGhostRate,
		&stats.AvgWaitDays,
	)
	if err != nil {
		return CommunityStats{}, err
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	var notes sql.NullString
	err := row.Scan(
		&report.ID,
		&report.CompanyName,
		&report.CompanySlug,
		&report.Position,
		&report.Outcome,
		&report.DaysWaited,
		&report.AppliedVia,
		&notes,
		&report.CreatedAt,
	)
	if err != nil {
		return Report{}, err
	}
	if notes.Valid {
		report.Notes = notes.String
	}
	return report, nil
}

func collectReports(rows *sql.Rows) ([]Report, error) {
	out := []Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

func scanStats(row rowScanner) (CompanyStats, error) {
	var stats CompanyStats
	err := row.Scan(
		&stats.CompanyName,
		&stats.CompanySlug,
		&stats.TotalReports,
		&stats.GhostedCount,
		&stats.GhostRate,
		&stats.AvgWaitDays,
		&stats.RespondedCount,
		&stats.RejectedCount,
		&stats.OfferCount,
	)
	if err != nil {
		return CompanyStats{}, err
	}
	return stats, nil
}

func collectStats(rows *sql.Rows) ([]CompanyStats, error) {
	out := []CompanyStats{}
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, rows.Err()
}
