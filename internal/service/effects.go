package service

import (
	"context"

	"go.uber.org/zap"

	"contractapi/internal/metrics"
)

// Outcome is the result of a best-effort side effect. A failed side effect never
// fails the operation that triggered it; callers collect or discard the Outcome.
type Outcome struct {
	Effect string `json:"effect"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	err    error
}

// Err returns the underlying error, nil when the effect succeeded.
func (o Outcome) Err() error { return o.err }

// sideEffects runs best-effort calls and records failures.
type sideEffects struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func (s sideEffects) run(ctx context.Context, operation, effect string, fn func(ctx context.Context) error) Outcome {
	if err := fn(ctx); err != nil {
		return s.failed(operation, effect, err)
	}
	return Outcome{Effect: effect, OK: true}
}

func (s sideEffects) failed(operation, effect string, err error) Outcome {
	s.log.Warn("side effect failed",
		zap.String("operation", operation),
		zap.String("effect", effect),
		zap.Error(err),
	)
	s.metrics.SideEffectFailed(operation, effect)
	return Outcome{Effect: effect, Error: err.Error(), err: err}
}
