package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/monnify-relay/internal/logger"
)

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	logger *logger.Logger
}

func newRestyLogger(l *logger.Logger) *restyLogger {
	return &restyLogger{logger: l}
}

func (r *restyLogger) Errorf(format string, v ...any) {
	r.logger.Error().Str("component", "resty").Msg(trimMessage(format, v))
}

func (r *restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Str("component", "resty").Msg(trimMessage(format, v))
}

func (r *restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Str("component", "resty").Msg(trimMessage(format, v))
}

func trimMessage(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
