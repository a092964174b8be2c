package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
)

// Timeout bounds a single background task
const Timeout = 30 * time.Second

// Dispatch runs task in a new goroutine, detached from the caller's
// cancellation so that it outlives the HTTP request that started it.
// The context logger is carried over. Returned errors and panics are
// logged and otherwise dropped.
func Dispatch(ctx context.Context, task func(ctx context.Context) error) {
	bgCtx, cancel := context.WithTimeout(detach(ctx), Timeout)

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(bgCtx).Error("Panic in background task",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := task(bgCtx); err != nil {
			ctxlog.From(bgCtx).Error("Background task failed", "error", err)
		}
	}()
}

// detach returns a fresh context holding the logger of ctx
func detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
