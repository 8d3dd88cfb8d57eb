package reports

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/gate"
	"ghostboard/internal/shared/metrics"
	"ghostboard/internal/shared/server/middleware"
	"ghostboard/internal/shared/server/respond"
	"ghostboard/internal/shared/telemetry"
)

const recentLimit = 20

const demoSubmitMessage = "Report submitted (demo mode - connect database to persist)"

// Fallback supplies demo data for the report endpoints when the live store
// is out of reach.
type Fallback interface {
	RecentReports() []Report
	Acknowledge(draft Draft, now time.Time) Report
}

// Handler wires the report endpoints.
type Handler struct {
	Repo     Store
	Gate     gate.Prober
	Fallback Fallback
}

// NewHandler constructs a Handler.
func NewHandler(repo Store, prober gate.Prober, fallback Fallback) *Handler {
	return &Handler{Repo: repo, Gate: prober, Fallback: fallback}
}

// RegisterRoutes attaches report routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/reports", h.recent)
	r.POST("/reports", h.submit)
}

func (h *Handler) recent(c *gin.Context) {
	result := gate.Fetch(c.Request.Context(), h.Gate, func(ctx context.Context) ([]Report, error) {
		return h.Repo.Recent(ctx, recentLimit)
	}, h.Fallback.RecentReports)

	if result.Demo {
		middleware.MarkDemoMode(c)
		metrics.IncFallbackRead()
	}
	respond.OK(c, result.Value)
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		if errors.Is(err, ErrInvalidOutcome) {
			respond.Error(c, http.StatusBadRequest, "Invalid outcome")
		} else {
			respond.Error(c, http.StatusBadRequest, "Missing required fields")
		}
		return
	}

	ctx := c.Request.Context()
	if h.Gate != nil && h.Gate.Available(ctx) {
		report, err := h.Repo.Insert(ctx, draft)
		if err == nil {
			metrics.IncReportSubmitted()
			respond.OK(c, submitResponse{Success: true, Report: report})
			return
		}
		telemetry.Warn("report.insert_failed", map[string]any{
			"error":        err.Error(),
			"company_slug": Slugify(draft.CompanyName),
			"request_id":   middleware.RequestIDFromContext(c),
		})
	}

	// The input already validated, so a backend failure never rejects the
	// submission: fabricate an acknowledgement instead.
	metrics.IncReportDemoAck()
	middleware.MarkDemoMode(c)
	respond.OK(c, submitResponse{
		Success:  true,
		DemoMode: true,
		Message:  demoSubmitMessage,
		Report:   h.Fallback.Acknowledge(draft, time.Now().UTC()),
	})
}
