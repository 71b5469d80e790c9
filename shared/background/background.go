// Package background tracks work that outlives the request which started it.
package background

import (
	"context"
	"fmt"
	"hotel/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// Group runs tasks detached from the caller's cancellation but bounded by a
// timeout, and lets shutdown wait for them before shared clients are closed.
type Group struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func New(cfg *config.Config) *Group {
	timeout := time.Duration(cfg.App.Background.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Group{timeout: timeout}
}

// Go runs fn in its own goroutine. fn receives ctx's values without its
// cancellation, plus a deadline of the group timeout. A panic in fn is logged
// and does not take the process down.
func (g *Group) Go(ctx context.Context, name string, fn func(ctx context.Context)) {
	g.wg.Add(1)

	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("task", name).Interface("panic", r).Msg("Background task panicked")
			}
		}()

		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
		defer cancel()

		fn(taskCtx)
	}()
}

// Wait blocks until every started task has returned or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background tasks still running: %w", ctx.Err())
	}
}
