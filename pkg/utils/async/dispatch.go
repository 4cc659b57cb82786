package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch executes a handler asynchronously with panic recovery. The
// handler runs on a detached background context that keeps the logger but
// not the parent's cancellation, so callers can return immediately while
// work continues.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := backgroundContext(ctx)

	go func() {
		defer recoverPanic(newCtx)

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Repeat runs a handler on the given interval until ctx is cancelled.
// Unlike Dispatch it honors the parent's cancellation, since periodic work
// must stop on shutdown. Each tick is panic-recovered independently.
func Repeat(ctx context.Context, interval time.Duration, handler func(ctx context.Context) error) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce(ctx, handler)
			}
		}
	}()
}

func runOnce(ctx context.Context, handler func(ctx context.Context) error) {
	defer recoverPanic(ctx)

	if err := handler(ctx); err != nil {
		ctxlog.From(ctx).Error("Error in periodic handler",
			"error", err,
		)
	}
}

func recoverPanic(ctx context.Context) {
	if r := recover(); r != nil {
		stack := debug.Stack()
		ctxlog.From(ctx).Error("Panic in async handler",
			"recover", r,
			"stack", string(stack),
		)
	}
}

// backgroundContext creates a detached context preserving the logger
func backgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	return newCtx
}
