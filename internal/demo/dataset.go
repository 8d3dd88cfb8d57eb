// Package demo holds the fallback dataset served whenever the live store is
// unreachable. The tables are process-wide read-only constants: demo mode
// must always render something plausible, never an error page.
package demo

import (
	"strings"
	"time"

	"ghostboard/internal/reports"
)

// companyTable is a fixed snapshot of well-known ghosters, ordered by ghost
// rate descending. Every entry clears the leaderboard's minimum sample size,
// so demo reads need no re-filtering.
var companyTable = []reports.CompanyStats{
	{CompanyName: "Amazon", CompanySlug: "amazon", TotalReports: 847, GhostedCount: 678, GhostRate: 80.0, AvgWaitDays: 32, RespondedCount: 84, RejectedCount: 68, OfferCount: 17},
	{CompanyName: "Meta", CompanySlug: "meta", TotalReports: 623, GhostedCount: 486, GhostRate: 78.0, AvgWaitDays: 28, RespondedCount: 74, RejectedCount: 50, OfferCount: 13},
	{CompanyName: "Google", CompanySlug: "google", TotalReports: 912, GhostedCount: 684, GhostRate: 75.0, AvgWaitDays: 35, RespondedCount: 137, RejectedCount: 73, OfferCount: 18},
	{CompanyName: "Oracle", CompanySlug: "oracle", TotalReports: 234, GhostedCount: 175, GhostRate: 74.8, AvgWaitDays: 41, RespondedCount: 35, RejectedCount: 21, OfferCount: 3},
	{CompanyName: "IBM", CompanySlug: "ibm", TotalReports: 312, GhostedCount: 231, GhostRate: 74.0, AvgWaitDays: 38, RespondedCount: 50, RejectedCount: 28, OfferCount: 3},
	{CompanyName: "Salesforce", CompanySlug: "salesforce", TotalReports: 289, GhostedCount: 208, GhostRate: 72.0, AvgWaitDays: 29, RespondedCount: 46, RejectedCount: 29, OfferCount: 6},
	{CompanyName: "Microsoft", CompanySlug: "microsoft", TotalReports: 756, GhostedCount: 529, GhostRate: 70.0, AvgWaitDays: 26, RespondedCount: 136, RejectedCount: 68, OfferCount: 23},
	{CompanyName: "Apple", CompanySlug: "apple", TotalReports: 534, GhostedCount: 369, GhostRate: 69.1, AvgWaitDays: 31, RespondedCount: 96, RejectedCount: 53, OfferCount: 16},
	{CompanyName: "Netflix", CompanySlug: "netflix", TotalReports: 178, GhostedCount: 121, GhostRate: 68.0, AvgWaitDays: 24, RespondedCount: 34, RejectedCount: 18, OfferCount: 5},
	{CompanyName: "Uber", CompanySlug: "uber", TotalReports: 267, GhostedCount: 181, GhostRate: 67.8, AvgWaitDays: 27, RespondedCount: 51, RejectedCount: 29, OfferCount: 6},
	{CompanyName: "LinkedIn", CompanySlug: "linkedin", TotalReports: 198, GhostedCount: 132, GhostRate: 66.7, AvgWaitDays: 22, RespondedCount: 40, RejectedCount: 20, OfferCount: 6},
	{CompanyName: "Spotify", CompanySlug: "spotify", TotalReports: 143, GhostedCount: 95, GhostRate: 66.4, AvgWaitDays: 25, RespondedCount: 29, RejectedCount: 14, OfferCount: 5},
	{CompanyName: "Adobe", CompanySlug: "adobe", TotalReports: 187, GhostedCount: 122, GhostRate: 65.2, AvgWaitDays: 28, RespondedCount: 39, RejectedCount: 19, OfferCount: 7},
	{CompanyName: "Airbnb", CompanySlug: "airbnb", TotalReports: 156, GhostedCount: 100, GhostRate: 64.1, AvgWaitDays: 23, RespondedCount: 34, RejectedCount: 16, OfferCount: 6},
	{CompanyName: "Twitter/X", CompanySlug: "twitter-x", TotalReports: 234, GhostedCount: 149, GhostRate: 63.7, AvgWaitDays: 19, RespondedCount: 51, RejectedCount: 28, OfferCount: 6},
	{CompanyName: "Stripe", CompanySlug: "stripe", TotalReports: 167, GhostedCount: 105, GhostRate: 62.9, AvgWaitDays: 21, RespondedCount: 38, RejectedCount: 17, OfferCount: 7},
	{CompanyName: "Snap Inc", CompanySlug: "snap-inc", TotalReports: 98, GhostedCount: 61, GhostRate: 62.2, AvgWaitDays: 26, RespondedCount: 22, RejectedCount: 12, OfferCount: 3},
	{CompanyName: "Coinbase", CompanySlug: "coinbase", TotalReports: 134, GhostedCount: 82, GhostRate: 61.2, AvgWaitDays: 20, RespondedCount: 32, RejectedCount: 16, OfferCount: 4},
	{CompanyName: "Shopify", CompanySlug: "shopify", TotalReports: 112, GhostedCount: 67, GhostRate: 59.8, AvgWaitDays: 18, RespondedCount: 28, RejectedCount: 12, OfferCount: 5},
	{CompanyName: "DoorDash", CompanySlug: "doordash", TotalReports: 89, GhostedCount: 52, GhostRate: 58.4, AvgWaitDays: 24, RespondedCount: 22, RejectedCount: 12, OfferCount: 3},
}

// communityTable is an independently authored summary consistent with the
// fixed table; it is deliberately not recomputed from it.
var communityTable = reports.CommunityStats{
	TotalReports:     6470,
	TotalCompanies:   20,
	OverallGhostRate: 68.4,
	AvgWaitDays:      27,
}

// Leaderboard returns the fixed table truncated to limit. The table is
// already ordered by ghost rate.
func Leaderboard(limit int) []reports.CompanyStats {
	return truncate(companyTable, limit)
}

// Search filters the fixed table by case-insensitive substring match on the
// company name.
func Search(query string, limit int) []reports.CompanyStats {
	needle := strings.ToLower(query)
	out := []reports.CompanyStats{}
	for _, c := range companyTable {
		if strings.Contains(strings.ToLower(c.CompanyName), needle) {
			out = append(out, c)
		}
	}
	return truncate(out, limit)
}

// CompanyBySlug looks up one company in the fixed table.
func CompanyBySlug(slug string) (reports.CompanyStats, bool) {
	for _, c := range companyTable {
		if c.CompanySlug == slug {
			return c, true
		}
	}
	return reports.CompanyStats{}, false
}

// CommunityStats returns the authored community summary.
func CommunityStats() reports.CommunityStats {
	return communityTable
}

// RecentReports returns the fixed recent-activity feed with timestamps
// relative to now.
func RecentReports() []reports.Report {
	now := time.Now().UTC()
	return []reports.Report{
		{
			ID: 1, CompanyName: "Amazon", CompanySlug: "amazon",
			Position: "Software Development Engineer", Outcome: reports.OutcomeGhosted,
			DaysWaited: 34, AppliedVia: "company website",
			Notes:     "Applied through their career portal. Got automated email, then nothing.",
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID: 2, CompanyName: "Google", CompanySlug: "google",
			Position: "Senior Software Engineer", Outcome: reports.OutcomeGhosted,
			DaysWaited: 28, AppliedVia: "referral",
			Notes:     "Friend referred me. Recruiter said they'd review and get back. Still waiting.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: 3, CompanyName: "Meta", CompanySlug: "meta",
			Position: "Product Manager", Outcome: reports.OutcomeRejected,
			DaysWaited: 21, AppliedVia: "LinkedIn",
			Notes:     "At least they sent a rejection email.",
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID: 4, CompanyName: "Microsoft", CompanySlug: "microsoft",
			Position: "Frontend Developer", Outcome: reports.OutcomeResponded,
			DaysWaited: 14, AppliedVia: "recruiter",
			Notes:     "Recruiter reached out! Phone screen scheduled.",
			CreatedAt: now.Add(-8 * time.Hour),
		},
		{
			ID: 5, CompanyName: "Netflix", CompanySlug: "netflix",
			Position: "Senior Backend Engineer", Outcome: reports.OutcomeGhosted,
			DaysWaited: 42, AppliedVia: "company website",
			Notes:     "",
			CreatedAt: now.Add(-12 * time.Hour),
		},
	}
}

// Acknowledge fabricates a write acknowledgement echoing the draft without
// persisting anything.
func Acknowledge(draft reports.Draft, now time.Time) reports.Report {
	return reports.Report{
		ID:          now.UnixMilli(),
		CompanyName: draft.CompanyName,
		CompanySlug: reports.Slugify(draft.CompanyName),
		Position:    draft.Position,
		Outcome:     draft.Outcome,
		DaysWaited:  draft.DaysWaited,
		AppliedVia:  draft.AppliedVia,
		Notes:       draft.Notes,
		CreatedAt:   now,
	}
}

func truncate(stats []reports.CompanyStats, limit int) []reports.CompanyStats {
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	out := make([]reports.CompanyStats, len(stats))
	copy(out, stats)
	return out
}
