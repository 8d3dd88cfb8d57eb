// Package gate decides per request whether the live store serves traffic or
// the fallback dataset does. Failures never propagate past it: a probe
// failure or a live-path error both mean demo data, not an error page.
package gate

import (
	"context"
	"database/sql"
	"time"
)

// Prober reports whether the live store is reachable. Implementations must
// swallow the underlying error.
type Prober interface {
	Available(ctx context.Context) bool
}

// DB probes a SQL database with a trivial round-trip query.
type DB struct {
	DB      *sql.DB
	Timeout time.Duration
}

// Available runs SELECT 1 against the pool. Any failure, including a
// timeout, reads as unavailable.
func (p *DB) Available(ctx context.Context) bool {
	if p == nil || p.DB == nil {
		return false
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var one int
	return p.DB.QueryRowContext(probeCtx, "SELECT 1").Scan(&one) == nil
}

// Static always reports the given availability. It backs tests and processes
// running without a configured database.
type Static bool

func (s Static) Available(context.Context) bool { return bool(s) }
