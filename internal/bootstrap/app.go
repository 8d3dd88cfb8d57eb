package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/gate"
	"ghostboard/internal/reports"
	"ghostboard/internal/shared/config"
	"ghostboard/internal/shared/server"
	"ghostboard/internal/shared/storage/db"
	"ghostboard/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Reports reports.Repo
	Gate    gate.Prober
}

// Build prepares shared dependencies and wires the router. A missing or
// unreachable database is not fatal: the process comes up serving the
// fallback dataset.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB := connectDB(ctx, cfg)

	var repo reports.Repo
	var prober gate.Prober
	if sqlDB != nil {
		repo = &reports.PGRepo{DB: sqlDB}
		prober = &gate.DB{DB: sqlDB}
	} else {
		// No pool to probe, so the gate stays shut and every request is
		// served demo data. The empty memory repo is never reached.
		repo = reports.NewMemoryRepo()
		prober = gate.Static(false)
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Reports: repo,
		Gate:    prober,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Reports: repo,
		Gate:    prober,
	})
	return app, nil
}

func connectDB(ctx context.Context, cfg config.Config) *sql.DB {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Warn("bootstrap.no_database", map[string]any{
			"detail": "DATABASE_URL empty; serving demo data",
		})
		return nil
	}

	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("bootstrap.database_unreachable", map[string]any{
			"error":  err.Error(),
			"detail": "serving demo data",
		})
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		telemetry.Warn("bootstrap.migrations_failed", map[string]any{
			"error":  err.Error(),
			"detail": "serving demo data",
		})
		conn.Close()
		return nil
	}
	return conn
}
