package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Lifecycle runs the process until it is interrupted and then calls the
// registered shutdown hooks.
type Lifecycle struct {
	mu      sync.Mutex
	hooks   []func(ctx context.Context) error
	timeout time.Duration
}

// NewLifecycle creates a Lifecycle whose hooks share timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	return &Lifecycle{timeout: timeout}
}

// AddShutdownHook registers fn to run on shutdown. Hooks run in reverse
// order of registration.
func (l *Lifecycle) AddShutdownHook(fn func(ctx context.Context) error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, fn)
}

// Run calls run and waits for it to return or for SIGINT or SIGTERM.
// The hooks run in both cases. An error from run is returned joined with
// any hook errors.
func (l *Lifecycle) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	return errors.Join(runErr, l.Shutdown(context.Background()))
}

// Shutdown calls the hooks once each, most recent first.
func (l *Lifecycle) Shutdown(ctx context.Context) error {
	l.mu.Lock()
	hooks := l.hooks
	l.hooks = nil
	l.mu.Unlock()

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
