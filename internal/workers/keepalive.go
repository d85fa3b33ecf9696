package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/monnify-relay/internal/adapter"
	"github.com/MKhiriev/monnify-relay/internal/logger"
)

// KeepAlive periodically requests the relay's own health route through its
// public base URL, so that hosts which suspend idle services keep it awake.
type KeepAlive struct {
	self     adapter.Requester
	interval time.Duration

	logger *logger.Logger
}

// NewKeepAlive returns a nil Worker when interval is not positive, which
// [NewWorkers] skips.
func NewKeepAlive(self adapter.Requester, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}
	return &KeepAlive{self: self, interval: interval, logger: logger}
}

func (k *KeepAlive) Run(ctx context.Context) error {
	t := time.NewTicker(k.interval)
	defer t.Stop()

	k.logger.Info().Dur("interval", k.interval).Msg("keep-alive started")

	for {
		select {
		case <-ctx.Done():
			k.logger.Info().Msg("keep-alive stopped")
			return nil
		case <-t.C:
			k.ping(ctx)
		}
	}
}

// ping logs a failed round trip at warn. A ping cut short by shutdown is
// not a failure.
func (k *KeepAlive) ping(ctx context.Context) {
	res := k.self.Get(ctx, "/", adapter.WithTimeout(k.interval))
	if res.IsSuccess() {
		k.logger.Debug().Int("status", res.StatusCode).Msg("keep-alive ping")
		return
	}
	if ctx.Err() != nil {
		return
	}

	k.logger.Warn().
		Str("outcome", res.Outcome.String()).
		Int("status", res.StatusCode).
		Msg("keep-alive ping failed")
}
