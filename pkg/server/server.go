package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"mergington-api/pkg/logger"
)

// New creates an HTTP server with the service's timeouts
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down within shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, log *logger.Logger, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err, ok := <-serverErr:
		if ok {
			log.WithError(err).Error("Server failed")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown error")
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
