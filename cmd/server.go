package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// APIServer serves handler on the configured port until ctx is cancelled,
// then drains in-flight requests within the shutdown timeout.
func APIServer(ctx context.Context, handler http.Handler, config *utils.Config, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", config.App.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return serve(ctx, listener, handler, config.HTTP, logger)
}

func serve(ctx context.Context, listener net.Listener, handler http.Handler, config utils.HTTPConfig, logger *zap.Logger) error {
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server running", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", zap.Duration("timeout", config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
