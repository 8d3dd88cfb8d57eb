package gate

import (
	"context"

	"ghostboard/internal/shared/telemetry"
)

// Result carries a fetched value and whether it came from the fallback source.
type Result[T any] struct {
	Value T
	Demo  bool
}

// Fetch is the three-branch read policy at the data-source boundary: when
// the prober reports the store reachable and live succeeds, the live value
// wins; a failed probe or a live error both yield the fallback value. The
// caller always gets a value, never an error.
func Fetch[T any](ctx context.Context, p Prober, live func(context.Context) (T, error), fallback func() T) Result[T] {
	if p != nil && p.Available(ctx) {
		val, err := live(ctx)
		if err == nil {
			return Result[T]{Value: val}
		}
		telemetry.Warn("gate.live_failed", map[string]any{"error": err.Error()})
	}
	return Result[T]{Value: fallback(), Demo: true}
}
