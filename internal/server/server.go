package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/monnify-relay/internal/config"
	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer wires handler into an HTTP server listening on cfg.Address().
// bg may be nil.
func NewServer(handler http.Handler, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerIsCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer:      newHTTPServer(handler, cfg, logger),
		workers:         bg,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.httpServer.RunServer)

	if s.workers.Len() > 0 {
		s.logger.Info().Int("count", s.workers.Len()).Msg("Launching background workers")
	}
	g.Go(func() error {
		return s.workers.Run(ctx)
	})

	// finish started servers once a stop is requested or something failed
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
			defer cancel()
		}
		return s.httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
