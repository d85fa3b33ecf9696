package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/adapter"
	"github.com/MKhiriev/monnify-relay/internal/logger"
)

type demoService struct {
	demo adapter.Requester

	logger *logger.Logger
}

func NewDemoService(demo adapter.Requester, logger *logger.Logger) DemoService {
	return &demoService{demo: demo, logger: logger}
}

func (s *demoService) Ping(ctx context.Context) (int, error) {
	res := s.demo.Get(ctx, "/")

	if !res.Responded() {
		return 0, ErrDemoUnreachable
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return res.StatusCode, fmt.Errorf("%w: status %d", ErrDemoUnreachable, res.StatusCode)
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Int("status", res.StatusCode).
		Msg("demo upstream answered")

	return res.StatusCode, nil
}
