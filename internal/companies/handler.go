// Package companies serves the statistics endpoints: the ghosting
// leaderboard, per-company detail and the community summary.
package companies

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/demo"
	"ghostboard/internal/gate"
	"ghostboard/internal/reports"
	"ghostboard/internal/shared/metrics"
	"ghostboard/internal/shared/server/middleware"
	"ghostboard/internal/shared/server/respond"
)

const (
	defaultListLimit    = 20
	companyReportsLimit = 50
)

// Handler wires the statistics endpoints.
type Handler struct {
	Reports reports.Repo
	Gate    gate.Prober
}

// NewHandler constructs a Handler.
func NewHandler(repo reports.Repo, prober gate.Prober) *Handler {
	return &Handler{Reports: repo, Gate: prober}
}

// RegisterRoutes attaches company and stats routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/companies", h.list)
	r.GET("/companies/:slug", h.detail)
	r.GET("/stats", h.community)
}

func (h *Handler) list(c *gin.Context) {
	query := c.Query("q")
	limit := parseLimit(c.Query("limit"), defaultListLimit)

	var result gate.Result[[]reports.CompanyStats]
	if query != "" {
		result = gate.Fetch(c.Request.Context(), h.Gate, func(ctx context.Context) ([]reports.CompanyStats, error) {
			return h.Reports.Search(ctx, query, limit)
		}, func() []reports.CompanyStats {
			return demo.Search(query, limit)
		})
	} else {
		result = gate.Fetch(c.Request.Context(), h.Gate, func(ctx context.Context) ([]reports.CompanyStats, error) {
			return h.Reports.Leaderboard(ctx, limit)
		}, func() []reports.CompanyStats {
			return demo.Leaderboard(limit)
		})
	}

	if result.Demo {
		middleware.MarkDemoMode(c)
		metrics.IncFallbackRead()
	}
	respond.OK(c, result.Value)
}

type companyDetail struct {
	Company reports.CompanyStats `json:"company"`
	Reports []reports.Report     `json:"reports"`
}

func (h *Handler) detail(c *gin.Context) {
	slug := c.Param("slug")

	result := gate.Fetch(c.Request.Context(), h.Gate, func(ctx context.Context) (*companyDetail, error) {
		stats, err := h.Reports.CompanyBySlug(ctx, slug)
		if errors.Is(err, reports.ErrNotFound) {
			// A live miss is a definitive 404, not a fallback trigger.
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		list, err := h.Reports.ForCompany(ctx, slug, companyReportsLimit)
		if err != nil {
			return nil, err
		}
		return &companyDetail{Company: stats, Reports: list}, nil
	}, func() *companyDetail {
		stats, ok := demo.CompanyBySlug(slug)
		if !ok {
			return nil
		}
		return &companyDetail{Company: stats, Reports: demo.GenerateReports(slug)}
	})

	if result.Demo {
		middleware.MarkDemoMode(c)
		metrics.IncFallbackRead()
	}
	if result.Value == nil {
		respond.Error(c, http.StatusNotFound, "Company not found")
		return
	}
	respond.OK(c, result.Value)
}

func (h *Handler) community(c *gin.Context) {
	result := gate.Fetch(c.Request.Context(), h.Gate, func(ctx context.Context) (reports.CommunityStats, error) {
		return h.Reports.CommunityStats(ctx)
	}, demo.CommunityStats)

	if result.Demo {
		middleware.MarkDemoMode(c)
		metrics.IncFallbackRead()
	}
	respond.OK(c, result.Value)
}

func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
