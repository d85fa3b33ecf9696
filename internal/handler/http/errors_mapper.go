package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/monnify-relay/internal/service"
	"github.com/MKhiriev/monnify-relay/models"
)

var errorStatusMap = map[error]int{
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrDemoUnreachable:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody renders err in the shape the public API uses for it.
func errorBody(err error) any {
	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		return models.MessageResponse{Message: msgAuthFailed}
	case errors.Is(err, service.ErrDemoUnreachable):
		return models.ErrorResponse{Error: msgDemoFailed}
	default:
		return models.FailureResponse{
			Success: false,
			Status:  http.StatusInternalServerError,
			Message: err.Error(),
		}
	}
}
