package companies_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/gate"
	"ghostboard/internal/reports"
	"ghostboard/internal/shared/config"
	"ghostboard/internal/shared/server"
)

func newRouter(repo reports.Repo, available bool) *gin.Engine {
	return server.NewRouter(server.RouterDeps{
		Config:  config.Config{CORSAllowOrigin: []string{"*"}},
		Reports: repo,
		Gate:    gate.Static(available),
	})
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
}

func seedRepo(t *testing.T, repo *reports.MemoryRepo, company string, outcomes ...reports.Outcome) {
	t.Helper()
	for _, outcome := range outcomes {
		_, err := repo.Insert(context.Background(), reports.Draft{
			CompanyName: company,
			Position:    "Engineer",
			Outcome:     outcome,
			DaysWaited:  10,
			AppliedVia:  "website",
		})
		if err != nil {
			t.Fatalf("seeding %s failed: %v", company, err)
		}
	}
}

func TestLeaderboardLiveFloor(t *testing.T) {
	repo := reports.NewMemoryRepo()
	seedRepo(t, repo, "Acme Corp",
		reports.OutcomeGhosted, reports.OutcomeGhosted, reports.OutcomeOffer)
	seedRepo(t, repo, "Nice Inc", reports.OutcomeResponded)

	w := doGet(t, newRouter(repo, true), "/companies")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []reports.CompanyStats
	decodeBody(t, w, &got)
	if len(got) != 1 {
		t.Fatalf("expected only companies with 3+ reports, got %+v", got)
	}
	if got[0].CompanySlug != "acme-corp" || got[0].GhostRate != 66.7 {
		t.Fatalf("unexpected leaderboard entry: %+v", got[0])
	}
}

func TestSearchLiveIgnoresFloor(t *testing.T) {
	repo := reports.NewMemoryRepo()
	seedRepo(t, repo, "Nice Inc", reports.OutcomeResponded)

	w := doGet(t, newRouter(repo, true), "/companies?q=nice")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []reports.CompanyStats
	decodeBody(t, w, &got)
	if len(got) != 1 || got[0].CompanySlug != "nice-inc" {
		t.Fatalf("expected nice-inc despite single report, got %+v", got)
	}
}

func TestCompanyDetailLive(t *testing.T) {
	repo := reports.NewMemoryRepo()
	seedRepo(t, repo, "Acme Corp", reports.OutcomeGhosted, reports.OutcomeRejected)
	r := newRouter(repo, true)

	w := doGet(t, r, "/companies/acme-corp")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var detail struct {
		Company reports.CompanyStats `json:"company"`
		Reports []reports.Report     `json:"reports"`
	}
	decodeBody(t, w, &detail)
	if detail.Company.CompanySlug != "acme-corp" || detail.Company.TotalReports != 2 {
		t.Fatalf("unexpected company aggregate: %+v", detail.Company)
	}
	if len(detail.Reports) != 2 {
		t.Fatalf("expected both reports, got %d", len(detail.Reports))
	}

	w = doGet(t, r, "/companies/unknown-slug-xyz")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "Company not found" {
		t.Fatalf("expected canonical 404 body, got %q", body["error"])
	}
}

func TestCommunityStatsLiveEmpty(t *testing.T) {
	w := doGet(t, newRouter(reports.NewMemoryRepo(), true), "/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got reports.CommunityStats
	decodeBody(t, w, &got)
	if got.TotalReports != 0 || got.TotalCompanies != 0 || got.OverallGhostRate != 0 || got.AvgWaitDays != 0 {
		t.Fatalf("expected all-zero community stats, got %+v", got)
	}
}

func TestDemoLeaderboard(t *testing.T) {
	r := newRouter(reports.NewMemoryRepo(), false)

	w := doGet(t, r, "/companies")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []reports.CompanyStats
	decodeBody(t, w, &got)
	if len(got) != 20 {
		t.Fatalf("expected the full demo table, got %d", len(got))
	}
	if got[0].CompanySlug != "amazon" {
		t.Fatalf("expected amazon first, got %q", got[0].CompanySlug)
	}

	w = doGet(t, r, "/companies?limit=3")
	decodeBody(t, w, &got)
	if len(got) != 3 {
		t.Fatalf("expected limit applied to demo table, got %d", len(got))
	}
}

func TestDemoSearch(t *testing.T) {
	w := doGet(t, newRouter(reports.NewMemoryRepo(), false), "/companies?q=STRIPE")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []reports.CompanyStats
	decodeBody(t, w, &got)
	if len(got) != 1 || got[0].CompanySlug != "stripe" {
		t.Fatalf("expected case-insensitive demo search hit, got %+v", got)
	}
}

func TestDemoCompanyDetail(t *testing.T) {
	r := newRouter(reports.NewMemoryRepo(), false)

	w := doGet(t, r, "/companies/amazon")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var detail struct {
		Company reports.CompanyStats `json:"company"`
		Reports []reports.Report     `json:"reports"`
	}
	decodeBody(t, w, &detail)
	if detail.Company.CompanySlug != "amazon" || detail.Company.TotalReports != 847 {
		t.Fatalf("unexpected demo company: %+v", detail.Company)
	}
	if len(detail.Reports) != 50 {
		t.Fatalf("expected 50 synthesized reports, got %d", len(detail.Reports))
	}
	for i, rep := range detail.Reports {
		if rep.CompanySlug != "amazon" || !rep.Outcome.Valid() {
			t.Fatalf("bad synthesized report %d: %+v", i, rep)
		}
	}

	w = doGet(t, r, "/companies/unknown-slug-xyz")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 in demo mode too, got %d", w.Code)
	}
}

func TestDemoCommunityStats(t *testing.T) {
	w := doGet(t, newRouter(reports.NewMemoryRepo(), false), "/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got reports.CommunityStats
	decodeBody(t, w, &got)
	if got.TotalReports != 6470 || got.TotalCompanies != 20 {
		t.Fatalf("unexpected demo community stats: %+v", got)
	}
	if got.OverallGhostRate != 68.4 || got.AvgWaitDays != 27 {
		t.Fatalf("unexpected demo community rates: %+v", got)
	}
}

// failingRepo reports every query as a backend failure; reads must still
// succeed off the demo dataset.
type failingRepo struct{}

var errDown = errors.New("connection refused")

func (failingRepo) Insert(context.Context, reports.Draft) (reports.Report, error) {
	return reports.Report{}, errDown
}
func (failingRepo) Recent(context.Context, int) ([]reports.Report, error) { return nil, errDown }
func (failingRepo) ForCompany(context.Context, string, int) ([]reports.Report, error) {
	return nil, errDown
}
func (failingRepo) Leaderboard(context.Context, int) ([]reports.CompanyStats, error) {
	return nil, errDown
}
func (failingRepo) Search(context.Context, string, int) ([]reports.CompanyStats, error) {
	return nil, errDown
}
func (failingRepo) CompanyBySlug(context.Context, string) (reports.CompanyStats, error) {
	return reports.CompanyStats{}, errDown
}
func (failingRepo) CommunityStats(context.Context) (reports.CommunityStats, error) {
	return reports.CommunityStats{}, errDown
}

func TestLiveQueryFailureFallsBack(t *testing.T) {
	r := newRouter(failingRepo{}, true)

	w := doGet(t, r, "/companies")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite backend failure, got %d", w.Code)
	}
	var list []reports.CompanyStats
	decodeBody(t, w, &list)
	if len(list) != 20 {
		t.Fatalf("expected demo leaderboard, got %d entries", len(list))
	}

	w = doGet(t, r, "/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite backend failure, got %d", w.Code)
	}
	var stats reports.CommunityStats
	decodeBody(t, w, &stats)
	if stats.TotalReports != 6470 {
		t.Fatalf("expected demo community stats, got %+v", stats)
	}
}
