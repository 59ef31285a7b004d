package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mindease/mindease-backend/internal/app"
	"github.com/mindease/mindease-backend/internal/platform/shutdown"
)

func main() {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Printf("failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- a.Run() }()

	select {
	case err := <-errCh:
		if err != nil {
			a.Log.Error("server exited", "error", err)
			a.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		a.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Shutdown(shutdownCtx); err != nil {
			a.Log.Warn("graceful shutdown failed", "error", err)
		}
	}
}
