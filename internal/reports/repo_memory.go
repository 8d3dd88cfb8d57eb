package reports

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. Aggregates are
// recomputed from the report list on every call, mirroring the SQL
// projections of PGRepo.
type MemoryRepo struct {
	mu     sync.RWMutex
	data   []Report
	nextID int64
	now    func() time.Time
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, now: time.Now}
}

// Insert appends a report, assigning identifier and creation timestamp.
func (r *MemoryRepo) Insert(ctx context.Context, draft Draft) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	report := Report{
		ID:          r.nextID,
		CompanyName: draft.CompanyName,
		CompanySlug: Slugify(draft.CompanyName),
		Position:    draft.Position,
		Outcome:     draft.Outcome,
		DaysWaited:  draft.DaysWaited,
		AppliedVia:  draft.AppliedVia,
		Notes:       draft.Notes,
		CreatedAt:   r.now().UTC(),
	}
	r.nextID++
	r.data = append(r.data, report)
	return report, nil
}

// Recent returns all reports, newest first, truncated to limit.
func (r *MemoryRepo) Recent(ctx context.Context, limit int) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirst(func(Report) bool { return true }, limit), nil
}

// ForCompany returns reports matching the slug, newest first, truncated to limit.
func (r *MemoryRepo) ForCompany(ctx context.Context, slug string, limit int) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirst(func(rep Report) bool { return rep.CompanySlug == slug }, limit), nil
}

// Leaderboard groups by slug, drops companies below the minimum sample size
// and orders by ghost rate, ties broken by report count.
func (r *MemoryRepo) Leaderboard(ctx context.Context, limit int) ([]CompanyStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	groups := groupBySlug(r.data, func(Report) bool { return true })
	r.mu.RUnlock()

	out := []CompanyStats{}
	for _, g := range groups {
		if g.TotalReports < leaderboardMinReports {
			continue
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GhostRate != out[j].GhostRate {
			return out[i].GhostRate > out[j].GhostRate
		}
		if out[i].TotalReports != out[j].TotalReports {
			return out[i].TotalReports > out[j].TotalReports
		}
		return out[i].CompanySlug < out[j].CompanySlug
	})
	return truncateStats(out, limit), nil
}

// Search filters reports by case-insensitive substring match on the company
// name, then aggregates with no minimum sample size.
func (r *MemoryRepo) Search(ctx context.Context, query string, limit int) ([]CompanyStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	r.mu.RLock()
	groups := groupBySlug(r.data, func(rep Report) bool {
		return strings.Contains(strings.ToLower(rep.CompanyName), needle)
	})
	r.mu.RUnlock()

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].TotalReports != groups[j].TotalReports {
			return groups[i].TotalReports > groups[j].TotalReports
		}
		return groups[i].CompanySlug < groups[j].CompanySlug
	})
	return truncateStats(groups, limit), nil
}

// CompanyBySlug aggregates exactly one company's reports.
func (r *MemoryRepo) CompanyBySlug(ctx context.Context, slug string) (CompanyStats, error) {
	if err := ctx.Err(); err != nil {
		return CompanyStats{}, err
	}
	r.mu.RLock()
	groups := groupBySlug(r.data, func(rep Report) bool { return rep.CompanySlug == slug })
	r.mu.RUnlock()
	if len(groups) == 0 {
		return CompanyStats{}, ErrNotFound
	}
	return groups[0], nil
}

// CommunityStats aggregates all reports; zero reports yield all-zero stats.
func (r *MemoryRepo) CommunityStats(ctx context.Context) (CommunityStats, error) {
	if err := ctx.Err(); err != nil {
		return CommunityStats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.data) == 0 {
		return CommunityStats{}, nil
	}
	slugs := map[string]struct{}{}
	ghosted := 0
	waitSum := 0
	for _, rep := range r.data {
		slugs[rep.CompanySlug] = struct{}{}
		if rep.Outcome == OutcomeGhosted {
			ghosted++
		}
		waitSum += rep.DaysWaited
	}
	total := len(r.data)
	return CommunityStats{
		TotalReports:     total,
		TotalCompanies:   len(slugs),
		OverallGhostRate: roundRate(ghosted, total),
		AvgWaitDays:      int(math.Round(float64(waitSum) / float64(total))),
	}, nil
}

func (r *MemoryRepo) newestFirst(keep func(Report) bool, limit int) []Report {
	out := []Report{}
	for _, rep := range r.data {
		if keep(rep) {
			out = append(out, rep)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type slugAccumulator struct {
	stats   CompanyStats
	waitSum int
}

func groupBySlug(data []Report, keep func(Report) bool) []CompanyStats {
	groups := map[string]*slugAccumulator{}
	order := []string{}
	for _, rep := range data {
		if !keep(rep) {
			continue
		}
		acc, ok := groups[rep.CompanySlug]
		if !ok {
			acc = &slugAccumulator{stats: CompanyStats{
				CompanyName: rep.CompanyName,
				CompanySlug: rep.CompanySlug,
			}}
			groups[rep.CompanySlug] = acc
			order = append(order, rep.CompanySlug)
		}
		// Slug-mates with distinct display names are one company; keep the
		// alphabetically first name, matching MIN(company_name) in SQL.
		if rep.CompanyName < acc.stats.CompanyName {
			acc.stats.CompanyName = rep.CompanyName
		}
		acc.stats.TotalReports++
		acc.waitSum += rep.DaysWaited
		switch rep.Outcome {
		case OutcomeGhosted:
			acc.stats.GhostedCount++
		case OutcomeRejected:
			acc.stats.RejectedCount++
		case OutcomeResponded:
			acc.stats.RespondedCount++
		case OutcomeOffer:
			acc.stats.OfferCount++
		}
	}

	out := make([]CompanyStats, 0, len(order))
	for _, slug := range order {
		acc := groups[slug]
		acc.stats.GhostRate = roundRate(acc.stats.GhostedCount, acc.stats.TotalReports)
		acc.stats.AvgWaitDays = int(math.Round(float64(acc.waitSum) / float64(acc.stats.TotalReports)))
		out = append(out, acc.stats)
	}
	return out
}

// roundRate computes ghosted/total as a percentage rounded to one decimal.
func roundRate(ghosted, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(ghosted)/float64(total)*1000) / 10
}

func truncateStats(stats []CompanyStats, limit int) []CompanyStats {
	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}
