package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/utils"
	"github.com/MKhiriev/monnify-relay/models"
)

// withRecover turns a panic in a downstream handler into a JSON 500 whose
// message is the panic value.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			message := panicMessage(rec)
			logger.FromRequest(r).Error().
				Str("panic", message).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteJSON(w, models.FailureResponse{
				Success: false,
				Status:  http.StatusInternalServerError,
				Message: message,
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

func panicMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(rec)
}
