package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown returns a channel that is closed when an interrupt or
// terminate signal is received or ctx is cancelled.
func waitForShutdown(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-quit:
		case <-ctx.Done():
		}
	}()
	return done
}
