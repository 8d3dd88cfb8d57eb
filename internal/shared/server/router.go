package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/companies"
	"ghostboard/internal/demo"
	"ghostboard/internal/gate"
	"ghostboard/internal/reports"
	"ghostboard/internal/shared/config"
	"ghostboard/internal/shared/metrics"
	"ghostboard/internal/shared/server/middleware"
	"ghostboard/internal/shared/server/respond"
)

const submitRateGroup = "SUBMIT"

// RouterDeps carries the wired dependencies for the HTTP surface.
type RouterDeps struct {
	Config  config.Config
	Reports reports.Repo
	Gate    gate.Prober
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/reports" {
					return submitRateGroup
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				// Submissions are anonymous; keep drive-by spam bounded.
				submitRateGroup: {Rate: 0.5, Burst: 5},
			},
		}),
	)

	reportsHandler := reports.NewHandler(deps.Reports, deps.Gate, demo.Source{})
	companiesHandler := companies.NewHandler(deps.Reports, deps.Gate)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"ok":       true,
			"database": deps.Gate != nil && deps.Gate.Available(c.Request.Context()),
		})
	})
	r.GET("/metrics", metrics.Handler())

	reportsHandler.RegisterRoutes(r)
	companiesHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
