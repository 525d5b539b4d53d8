// Package goroutine runs background jobs (MQ consumers, fire-and-forget
// publishes) under a concurrency limit so shutdown can wait for them.
package goroutine

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/storefront/internal/pkg/stacktrace"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxGoroutine is multiplied by NumCPU when NewManager gets a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager is a bounded errgroup that never blocks the caller: when the limit
// is reached the job is dropped with a warning.
type Manager struct {
	group  errgroup.Group
	mu     sync.RWMutex
	closed bool
}

func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	m := &Manager{}
	m.group.SetLimit(maxGoroutine)
	return m
}

// Go runs f in a new goroutine. Panics are logged and swallowed. Jobs
// submitted after Wait started, or while the limit is reached, are skipped.
func (m *Manager) Go(ctx context.Context, f func(ctx context.Context) error) bool {
	if m == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		slog.WarnContext(ctx, "goroutine manager is closed, skipping new goroutine")
		return false
	}

	started := m.group.TryGo(func() (err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", string(stack))
				}
			}
		}()

		if ctx.Err() != nil {
			slog.WarnContext(ctx, "goroutine canceled", "because", ctx.Err())
			return nil
		}
		return f(ctx)
	})
	if !started {
		slog.WarnContext(ctx, "maximum goroutine limit reached, failed to start new goroutine")
	}

	return started
}

// Wait stops accepting jobs, blocks until running ones finish and returns the first error.
func (m *Manager) Wait() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return m.group.Wait()
}
